package theme

import (
	"image/color"
)

// Theme defines the colors of the drawing window and of new marks.
type Theme struct {
	Name string

	// General
	Background color.RGBA // Window background around the canvas
	Foreground color.RGBA // Status text

	// Toolbar & status bar
	ToolbarBackground color.RGBA
	StatusBackground  color.RGBA

	// Buttons
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonTextDisabled    color.RGBA
	ButtonBorder          color.RGBA

	// Canvas
	Canvas       color.RGBA // Drawing background, also used for exports
	CanvasBorder color.RGBA
	Ink          color.RGBA // Stroke and sticker color
	PreviewAlpha uint8      // Opacity of the pointer preview, 0-255
}

// Default returns the hardcoded default light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		StatusBackground:      color.RGBA{210, 210, 210, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonTextDisabled:    color.RGBA{140, 140, 140, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		Canvas:                color.RGBA{255, 255, 255, 255},
		CanvasBorder:          color.RGBA{0, 0, 0, 255},
		Ink:                   color.RGBA{0, 0, 0, 255},
		PreviewAlpha:          0x60,
	}
}
