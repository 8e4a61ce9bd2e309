package internal

import (
	"fmt"

	"github.com/BrandonKowalski/technoapp/pkg/technoapp/icons"
	"github.com/veandco/go-sdl2/sdl"
)

// IconTexture returns a white texture of ref at size x size pixels. Tint
// it with SetColorMod. Textures are cached on the window.
func IconTexture(window *Window, ref icons.Ref, size int) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d", ref, size)
	return window.Icons.GetOrCreate(key, func() (*sdl.Texture, error) {
		return rasterizeIcon(window.Renderer, ref, size)
	})
}

func rasterizeIcon(renderer *sdl.Renderer, ref icons.Ref, size int) (*sdl.Texture, error) {
	img, err := icons.Rasterize(ref, size)
	if err != nil {
		return nil, err
	}

	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	// image.RGBA stores R,G,B,A bytes, which is ABGR8888 on little endian.
	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("icon surface lock: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := int(w) * 4
	for y := 0; y < int(h); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		copy(pixels[y*int(surface.Pitch):], src)
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
