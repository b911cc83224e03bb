// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	stdimage "image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-kaleidoscope/kaleido"
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/image"
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

type mapsOptions struct {
	input, outDir string
	width         int
}

func newMapsCmd(global *globalOptions) *cobra.Command {
	opts := &mapsOptions{}
	cmd := &cobra.Command{
		Use:   "maps",
		Short: "Write the triangle masks and sub-map previews for one cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaps(cmd.Context(), global, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.input, "input", "i", "", "image to preview with (default: synthetic stripes)")
	fs.StringVarP(&opts.outDir, "output", "o", "", "output directory")
	fs.IntVar(&opts.width, "width", defaultWidth, "cell width in pixels")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// artifact is one file written by the maps command.
type artifact struct {
	name   string
	render func() stdimage.Image
}

func runMaps(ctx context.Context, global *globalOptions, opts *mapsOptions) error {
	width := opts.width
	height := kaleido.HeightFor(width)
	if err := kaleido.CheckDimensions(width, height); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	src := stripes(width, height)
	if opts.input != "" {
		var err error
		if src, err = loadWedge(opts.input, width, height); err != nil {
			return err
		}
	}

	pool := workerpool.New(global.workers)
	defer pool.Close()

	up, down := kaleido.ParallelGenerateMasks(pool, width, height)
	subMaps := kaleido.ParallelGenerateSubMaps(pool, width, height)

	artifacts := []artifact{
		{"mask_up.png", func() stdimage.Image { return image.MaskToGray(up) }},
		{"mask_down.png", func() stdimage.Image { return image.MaskToGray(down) }},
		{"cell.png", func() stdimage.Image { return cellPreview(src, up, subMaps) }},
	}
	artifacts = append(artifacts, lo.FlatMap(subMaps, func(sm kaleido.SubMap, _ int) []artifact {
		return []artifact{
			{"submap_" + sm.Symmetry.String() + ".png", func() stdimage.Image {
				// Serial: the errgroup already runs one artifact per goroutine.
				return image.ToNRGBA(kaleido.RenderSubMap(nil, src, sm))
			}},
			{"coverage_" + sm.Symmetry.String() + ".png", func() stdimage.Image {
				return image.MaskToGray(coverage(sm.Map))
			}},
		}
	})...)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, global.workers))
	for _, a := range artifacts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(opts.outDir, a.name)
			if err := writePNG(path, a.render()); err != nil {
				return fmt.Errorf("%s: %w", a.name, err)
			}
			slog.Debug("wrote", "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("wrote cell maps", "dir", opts.outDir, "files", len(artifacts))
	return nil
}

// coverage marks the pixels a map samples from the source.
func coverage(m kaleido.Map) *image.Image[uint8] {
	out := image.NewImage[uint8](m.Width(), m.Height())
	image.Threshold(m.X, out, 0, kaleido.MaskOff, kaleido.MaskOn)
	return out
}

// cellPreview shows the Identity wedge inside its Up triangle and the
// Mirror wedge in the Down triangle sharing the cell.
func cellPreview(src *image.Image3[float32], up *image.Image[uint8], subMaps []kaleido.SubMap) stdimage.Image {
	identity, _ := kaleido.FindSubMap(subMaps, kaleido.Identity)
	mirror, _ := kaleido.FindSubMap(subMaps, kaleido.Mirror)
	a := kaleido.RenderSubMap(nil, src, identity)
	b := kaleido.RenderSubMap(nil, src, mirror)
	out := image.NewImage3[float32](src.Width(), src.Height())
	image.Select3(up, a, b, out)
	return image.ToNRGBA(out)
}

// stripes returns a cell whose top third is blue, the rest red, with a
// white marker near the top-left vertex so rotations are visible.
func stripes(width, height int) *image.Image3[float32] {
	img := image.NewImage3[float32](width, height)
	img.Fill([3]float32{255, 0, 0})
	img.FillRect(image.Rect{X1: width, Y1: height / 3}, [3]float32{0, 0, 255})
	img.FillRect(image.Rect{X0: width / 10, Y0: 1, X1: width / 5, Y1: height / 10}, [3]float32{255, 255, 255})
	return img
}
