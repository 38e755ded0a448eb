package sdlview

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/pawndev/softkeys/pkg/softkeys/internal"
)

const FontEnvVar = "SOFTKEYS_FONT"

var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
}

// CalculateFontSizeForResolution scales a size tuned for a 1024 pixel wide
// screen, damping growth above that width.
func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return int(float32(baseSize) * scaleFactor)
}

func fontCandidates(theme Theme) []string {
	var paths []string
	if env := os.Getenv(FontEnvVar); env != "" {
		paths = append(paths, env)
	}
	if theme.FontPath != "" {
		paths = append(paths, theme.FontPath)
	}
	return append(paths, fallbackFontPaths...)
}

func loadFont(theme Theme, size int) (*ttf.Font, error) {
	var lastErr error
	for _, path := range fontCandidates(theme) {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		internal.GetInternalLogger().Debug("Failed to load font", "path", path, "size", size, "error", err)
		lastErr = err
	}
	return nil, fmt.Errorf("no usable font (set %s): %w", FontEnvVar, lastErr)
}
