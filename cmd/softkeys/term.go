package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pawndev/softkeys/pkg/softkeys"
	"github.com/pawndev/softkeys/pkg/softkeys/termview"
)

const pollInterval = 50 * time.Millisecond

var termEvdev bool

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the keyboard in the terminal, driven by the mouse",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := initKeyboard()
		if err != nil {
			return err
		}
		defer softkeys.Close()

		field := softkeys.NewSecretField(kb)
		model := termview.NewModel(kb, field)

		if termEvdev {
			listener, err := openEvdev(kb)
			if err != nil {
				return err
			}
			if listener != nil {
				defer listener.Close()
				defer kb.Unmount()
				model = model.WithPolling(pollInterval)
			}
		}

		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
		return err
	},
}

func init() {
	termCmd.Flags().BoolVar(&termEvdev, "evdev", false, "track physical Shift/Alt through /dev/input")
	rootCmd.AddCommand(termCmd)
}
