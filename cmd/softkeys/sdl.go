package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/pawndev/softkeys/pkg/softkeys"
	"github.com/pawndev/softkeys/pkg/softkeys/evdevinput"
	"github.com/pawndev/softkeys/pkg/softkeys/sdlview"
)

var (
	windowWidth  int32
	windowHeight int32
	useEvdev     bool
)

var sdlCmd = &cobra.Command{
	Use:   "sdl",
	Short: "Open the keyboard in an SDL window",
	RunE: func(cmd *cobra.Command, args []string) error {
		kb, err := initKeyboard()
		if err != nil {
			return err
		}
		defer softkeys.Close()

		field := softkeys.NewSecretField(kb)
		field.SubmitOnEnter = true

		view, err := sdlview.NewView(kb, field, sdlview.ViewOptions{
			Width:  windowWidth,
			Height: windowHeight,
		})
		if err != nil {
			return err
		}
		defer view.Close()

		field.OnSubmit = func(string) {
			softkeys.GetLogger().Info("Secret submitted", "graphemes", field.Len())
			field.Clear()
		}

		if useEvdev {
			listener, err := openEvdev(kb)
			if err != nil {
				return err
			}
			if listener != nil {
				defer listener.Close()
			}
		}

		return view.Run()
	},
}

// openEvdev mounts the global modifier listener. A machine without readable
// keyboards is not an error, the window's own key events still apply.
func openEvdev(kb *softkeys.Keyboard) (*evdevinput.Listener, error) {
	listener, err := evdevinput.Open(kb.Defer)
	if errors.Is(err, evdevinput.ErrNoDevices) {
		softkeys.GetLogger().Warn("No input devices for physical modifiers", "error", err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	kb.Mount(listener)
	return listener, nil
}

func init() {
	sdlCmd.Flags().Int32Var(&windowWidth, "width", 1024, "window width")
	sdlCmd.Flags().Int32Var(&windowHeight, "height", 768, "window height")
	sdlCmd.Flags().BoolVar(&useEvdev, "evdev", false, "track physical Shift/Alt through /dev/input")
	rootCmd.AddCommand(sdlCmd)
}
