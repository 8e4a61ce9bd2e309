package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are point sizes for the three text styles.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

var DefaultFontSizes = FontSizes{
	Large:  40,
	Medium: 26,
	Small:  20,
}

// Fonts holds the open font faces.
type Fonts struct {
	LargeFont  *ttf.Font // Screen titles
	MediumFont *ttf.Font // Fields, buttons and list rows
	SmallFont  *ttf.Font // Hints, inline errors and tab labels
}

var fonts Fonts

func initFonts(path string, sizes FontSizes) error {
	if path == "" {
		return fmt.Errorf("no font configured")
	}

	open := func(size int) (*ttf.Font, error) {
		f, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s: %w", path, err)
		}
		return f, nil
	}

	var err error
	if fonts.LargeFont, err = open(sizes.Large); err != nil {
		return err
	}
	if fonts.MediumFont, err = open(sizes.Medium); err != nil {
		return err
	}
	if fonts.SmallFont, err = open(sizes.Small); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{fonts.LargeFont, fonts.MediumFont, fonts.SmallFont} {
		if f != nil {
			f.Close()
		}
	}
	fonts = Fonts{}
}

func GetFonts() Fonts {
	return fonts
}
