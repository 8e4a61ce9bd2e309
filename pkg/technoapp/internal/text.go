package internal

import (
	"strings"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText draws one line of text with its top edge at y. x is the left
// edge, the centre or the right edge depending on align. It returns the
// height drawn.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32, align constants.TextAlign) int32 {
	if text == "" || font == nil {
		return 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Error("Failed to create text texture", "error", err)
		return 0
	}
	defer texture.Destroy()

	switch align {
	case constants.TextAlignCenter:
		x -= surface.W / 2
	case constants.TextAlignRight:
		x -= surface.W
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.H
}

// RenderMultilineText wraps text at maxWidth on word boundaries and draws
// the lines top to bottom. It returns the total height drawn.
func RenderMultilineText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y, maxWidth int32, align constants.TextAlign) int32 {
	if font == nil {
		return 0
	}

	var drawn int32
	for _, line := range WrapText(font, text, maxWidth) {
		if line == "" {
			drawn += int32(font.Height())
			continue
		}
		drawn += RenderText(renderer, font, line, color, x, y+drawn, align)
	}
	return drawn
}

// WrapText splits text into lines no wider than maxWidth. Words wider than
// maxWidth get a line of their own.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if TextWidth(font, candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// TextWidth measures text in pixels.
func TextWidth(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}
