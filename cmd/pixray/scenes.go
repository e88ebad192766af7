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
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/scenes"
)

var (
	scenesOut    string
	scenesFormat string
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Render every scene in the catalogue",
	RunE:  renderScenes,
}

func init() {
	scenesCmd.Flags().StringVar(&scenesOut, "out", "out", "Output directory")
	scenesCmd.Flags().StringVar(&scenesFormat, "format", "png", "Output format (png, bmp)")
	rootCmd.AddCommand(scenesCmd)
}

func renderScenes(cmd *cobra.Command, args []string) error {
	if scenesFormat != "png" && scenesFormat != "bmp" {
		return fmt.Errorf("unknown format %q", scenesFormat)
	}
	if err := os.MkdirAll(scenesOut, 0o755); err != nil {
		return err
	}

	green := color.New(color.FgGreen, color.Bold)

	total := 0
	start := time.Now()
	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			name := category + "_" + sc.Name + "." + scenesFormat
			path := filepath.Join(scenesOut, name)

			img := sc.Render()
			if err := writeImage(img, path); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			slog.Debug("rendered scene",
				"scene", sc.Name, "category", category,
				"width", sc.Width, "height", sc.Height)
			green.Printf("✓ ")
			fmt.Println(path)
			total++
		}
	}

	slog.Info("rendered all scenes", "count", total, "elapsed", time.Since(start))
	return nil
}

func writeImage(img *pixel.Image, path string) error {
	if filepath.Ext(path) == ".bmp" {
		return img.WriteBMP(path)
	}
	return img.WritePNG(path)
}
