package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pawndev/softkeys/pkg/softkeys"
)

var (
	layoutFile string
	keySize    int
	rowGap     int
	logFile    string
	logLevel   string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "softkeys",
	Short: "On-screen keyboard for pointer and touch input",
	Long: `softkeys - an on-screen keyboard that types into a masked field.

Input goes through the virtual keyboard instead of the physical key channel,
so secrets typed with it never pass through a keystroke logger.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&layoutFile, "layout", "", "TOML keyboard layout (overridden by "+softkeys.LayoutEnvVar+")")
	flags.IntVar(&keySize, "key-size", softkeys.DefaultKeySize, "key height in pixels")
	flags.IntVar(&rowGap, "row-gap", softkeys.DefaultRowGap, "gap between rows in pixels")
	flags.StringVar(&logFile, "log-file", "", "also write logs to logs/<file>")
	flags.StringVar(&logLevel, "log-level", "error", "application log level (debug, info, warn, error)")
	flags.BoolVar(&debug, "debug", false, "enable keyboard diagnostics")
}

func options() softkeys.Options {
	return softkeys.Options{
		LogFilename: logFile,
		LogLevel:    logLevel,
		Debug:       debug,
		LayoutFile:  layoutFile,
		KeySize:     keySize,
		RowGap:      rowGap,
	}
}

// initKeyboard builds the keyboard from the persistent flags. Callers defer
// softkeys.Close.
func initKeyboard() (*softkeys.Keyboard, error) {
	kb, err := softkeys.Init(options())
	if err != nil {
		return nil, fmt.Errorf("init keyboard: %w", err)
	}
	return kb, nil
}
