// Package pixel is the rasteriser collaborator: it owns a pixelgl window,
// turns the core's packed 64x32 framebuffer into drawn rectangles, and
// translates key events into CHIP-8 hex codes for the keyboard latch.
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/bradford-hamilton/chip8vm/internal/chip8"
)

const (
	displayWidth  = 64
	displayHeight = 32
	screenWidth   = 1024
	screenHeight  = 768
)

// keyMap is the canonical scancode -> CHIP-8 hex code mapping (spec §6):
//
//	1 2 3 4        1 2 3 C
//	Q W E R   =>   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[byte]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window embeds a pixelgl window and satisfies chip8.Display.
type Window struct {
	*pixelgl.Window
}

// NewWindow creates and shows the emulator's output window.
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chip8vm",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	return &Window{Window: w}, nil
}

// Closed reports whether the user closed the window.
func (w *Window) Closed() bool {
	return w.Window.Closed()
}

// PumpInput polls the OS event queue and latches any key transitions onto
// kbd, using the canonical CHIP-8 keymap.
func (w *Window) PumpInput(kbd *chip8.Keyboard) {
	w.UpdateInput()
	for code, btn := range keyMap {
		switch {
		case w.JustPressed(btn):
			kbd.Press(code)
		case w.JustReleased(btn):
			kbd.Release(code)
		}
	}
}

// DrawGraphics renders the packed 256-byte framebuffer as a grid of filled
// rectangles, row 0 at the top of the window.
func (w *Window) DrawGraphics(fb [256]byte) {
	w.Clear(colornames.Black)

	imDraw := imdraw.New(nil)
	imDraw.Color = pixel.RGB(1, 1, 1)
	cellW, cellH := float64(screenWidth)/displayWidth, float64(screenHeight)/displayHeight

	for y := 0; y < displayHeight; y++ {
		for x := 0; x < displayWidth; x++ {
			if !pixelAt(fb, x, y) {
				continue
			}
			row := displayHeight - 1 - y
			imDraw.Push(pixel.V(cellW*float64(x), cellH*float64(row)))
			imDraw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(row)+cellH))
			imDraw.Rectangle(0)
		}
	}

	imDraw.Draw(w)
	w.Update()
}

// pixelAt decodes bit 7-(x mod 8) of byte y*8 + x/8 (spec §6's pixel_at helper).
func pixelAt(fb [256]byte, x, y int) bool {
	return (fb[y*8+x/8]>>uint(7-x%8))&1 == 1
}
