package internal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/holoplot/go-evdev"
)

// BackButtonConfig describes the hardware back key. Handhelds expose it
// as an input device rather than a keyboard SDL can see.
type BackButtonConfig struct {
	DevicePath string
	KeyCode    uint16
}

// ListenBackButton reads key events from the configured device and calls
// onPress for every press of the back key. It returns when ctx is done or
// the device fails. onPress runs on the listener goroutine.
func ListenBackButton(ctx context.Context, cfg BackButtonConfig, onPress func()) error {
	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return fmt.Errorf("open back button device %s: %w", cfg.DevicePath, err)
	}

	name, _ := device.Name()
	GetInternalLogger().Debug("Listening for back button", "device", cfg.DevicePath, "name", name, "code", cfg.KeyCode)

	stop := context.AfterFunc(ctx, func() {
		device.Close()
	})
	defer func() {
		if stop() {
			device.Close()
		}
	}()

	for {
		event, err := device.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read back button: %w", err)
		}

		if event.Type == evdev.EV_KEY && event.Code == evdev.EvCode(cfg.KeyCode) && event.Value == 1 {
			onPress()
		}
	}
}
