// seehuhn.de/go/pixel - integer rasterisation of 2D graphics primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/pixel"
)

var (
	heartFrames int
	heartCanvas int
	heartOut    string
	heartGIF    bool
)

var heartCmd = &cobra.Command{
	Use:   "heart",
	Short: "Render the growing-heart animation",
	Long: `Renders a sequence of frames showing a heart growing from a quarter
to three quarters of the canvas size. Frames whose geometry would
exceed the canvas are skipped with a warning. Each frame is written
as a PNG; --gif additionally assembles an animated GIF.`,
	RunE: renderHeart,
}

func init() {
	heartCmd.Flags().IntVar(&heartFrames, "frames", 24, "Number of animation frames")
	heartCmd.Flags().IntVar(&heartCanvas, "canvas", 512, "Canvas size in pixels (square)")
	heartCmd.Flags().StringVar(&heartOut, "out", "out", "Output directory")
	heartCmd.Flags().BoolVar(&heartGIF, "gif", false, "Also write an animated GIF")
	rootCmd.AddCommand(heartCmd)
}

func renderHeart(cmd *cobra.Command, args []string) error {
	if heartFrames < 1 {
		return fmt.Errorf("need at least one frame, got %d", heartFrames)
	}
	if err := os.MkdirAll(heartOut, 0o755); err != nil {
		return err
	}

	center := pixel.Pt(heartCanvas/2, heartCanvas/2)
	red := color.RGBA{R: 220, G: 30, B: 30, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// The heart grows from a quarter to three quarters of the canvas
	// size; the last sizes intentionally run into the bounds check so
	// the skip path is visible in normal use.
	minSize := heartCanvas / 4
	maxSize := heartCanvas * 3 / 4
	step := 1
	if heartFrames > 1 {
		step = (maxSize - minSize) / (heartFrames - 1)
	}

	anim := &gif.GIF{}
	written := 0
	for i := range heartFrames {
		size := minSize + i*step

		r := pixel.Renderer{Width: heartCanvas, Height: heartCanvas, Background: white}
		var drawErr error
		img := r.Render(func(c pixel.Canvas) {
			drawErr = pixel.Heart(c, center, size, size, red)
		})
		if drawErr != nil {
			if errors.Is(drawErr, pixel.ErrBounds) {
				slog.Warn("skipping frame", "frame", i, "size", size, "err", drawErr)
				continue
			}
			return drawErr
		}

		rgba := img.ToImage()
		stampLabel(rgba, fmt.Sprintf("frame %02d  size %d", i, size))

		path := filepath.Join(heartOut, fmt.Sprintf("heart_%03d.png", i))
		if err := writePNG(rgba, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written++

		if heartGIF {
			pal := image.NewPaletted(rgba.Bounds(), palette.Plan9)
			draw.Draw(pal, pal.Bounds(), rgba, image.Point{}, draw.Src)
			anim.Image = append(anim.Image, pal)
			anim.Delay = append(anim.Delay, 8) // in 1/100 s
		}

		slog.Debug("rendered frame", "frame", i, "size", size)
	}

	if heartGIF && len(anim.Image) > 0 {
		path := filepath.Join(heartOut, "heart.gif")
		if err := writeGIF(anim, path); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	slog.Info("animation complete", "frames", written, "skipped", heartFrames-written)
	return nil
}

// stampLabel draws a small text label into the top-left corner of the
// frame.
func stampLabel(dst *image.RGBA, label string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 16),
	}
	d.DrawString(label)
}

func writePNG(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeGIF(anim *gif.GIF, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = gif.EncodeAll(f, anim)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
