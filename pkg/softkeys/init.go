package softkeys

import (
	"log/slog"
	"os"

	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

const (
	DebugEnvVar  = "SOFTKEYS_DEBUG"
	LayoutEnvVar = "SOFTKEYS_LAYOUT"
)

type Options struct {
	LogFilename string
	LogLevel    string
	Debug       bool

	// LayoutFile is a TOML layout. SOFTKEYS_LAYOUT takes precedence.
	LayoutFile string
	KeySize    int
	RowGap     int

	OnChange func()
}

// Init sets up logging and builds a keyboard from options.
func Init(options Options) (*Keyboard, error) {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if options.Debug || os.Getenv(DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	layoutFile := options.LayoutFile
	if env := os.Getenv(LayoutEnvVar); env != "" {
		layoutFile = env
	}

	layout := DefaultLayout()
	if layoutFile != "" {
		var err error
		layout, err = LoadLayout(layoutFile)
		if err != nil {
			return nil, err
		}
	}

	return NewKeyboard(KeyboardOptions{
		Layout:   layout,
		KeySize:  options.KeySize,
		RowGap:   options.RowGap,
		OnChange: options.OnChange,
	}), nil
}

// Close flushes the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
