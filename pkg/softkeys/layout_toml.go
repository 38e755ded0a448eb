package softkeys

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

// Layout files are TOML. Each state is either a bare string, which is both
// shown and emitted, or a table with a display and exactly one of text or
// command:
//
//	[[rows]]
//	keys = [
//	    { width = 1, plain = "q", shift = "Q" },
//	    { width = 2, plain = { display = "⌫", command = "backspace" } },
//	]
type layoutFile struct {
	Rows []rowFile `toml:"rows"`
}

type rowFile struct {
	Keys []keyFile `toml:"keys"`
}

type keyFile struct {
	Width    widthValue `toml:"width"`
	Plain    stateFile  `toml:"plain"`
	Shift    stateFile  `toml:"shift"`
	Alt      stateFile  `toml:"alt"`
	ShiftAlt stateFile  `toml:"shift_alt"`
}

type widthValue float64

func (w *widthValue) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64:
		*w = widthValue(v)
	case float64:
		*w = widthValue(v)
	default:
		return fmt.Errorf("width must be a number, got %T", data)
	}
	return nil
}

type stateFile struct {
	state KeyState
	set   bool
}

func (s *stateFile) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		s.state = *Glyph(v)
		s.set = true
		return nil
	case map[string]any:
		display, _ := v["display"].(string)
		text, hasText := v["text"].(string)
		command, hasCommand := v["command"].(string)

		switch {
		case hasText && hasCommand:
			return fmt.Errorf("key state %q sets both text and command", display)
		case hasCommand:
			cmd, err := ParseCommand(command)
			if err != nil {
				return err
			}
			s.state = *Special(display, cmd)
		case hasText:
			if display == "" {
				display = text
			}
			s.state = *Emit(display, text)
		default:
			return fmt.Errorf("key state %q needs text or command", display)
		}
		s.set = true
		return nil
	default:
		return fmt.Errorf("key state must be a string or table, got %T", data)
	}
}

func (s stateFile) keyState() *KeyState {
	if !s.set {
		return nil
	}
	st := s.state
	return &st
}

// ParseLayout builds a Layout from TOML data.
func ParseLayout(data []byte) (*Layout, error) {
	var file layoutFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	specs := make([][]KeySpec, len(file.Rows))
	for r, row := range file.Rows {
		specs[r] = make([]KeySpec, len(row.Keys))
		for c, key := range row.Keys {
			specs[r][c] = KeySpec{
				Width:    float64(key.Width),
				Plain:    key.Plain.keyState(),
				Shift:    key.Shift.keyState(),
				Alt:      key.Alt.keyState(),
				ShiftAlt: key.ShiftAlt.keyState(),
			}
		}
	}

	return BuildLayout(specs)
}

// LoadLayout reads and parses a TOML layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}

	layout, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", path, err)
	}

	internal.GetInternalLogger().Debug("Loaded keyboard layout", "path", path, "rows", layout.RowCount())
	return layout, nil
}
