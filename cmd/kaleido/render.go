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
	"errors"
	"fmt"
	stdimage "image"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-kaleidoscope/kaleido"
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/image"
	"github.com/ajroetker/go-kaleidoscope/kaleido/contrib/workerpool"
)

type renderOptions struct {
	input, output string
	width         int
	cols, rows    int
}

func newRenderCmd(global *globalOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the kaleidoscope of an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(global, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.input, "input", "i", "", "input image (PNG, JPEG, GIF or WebP)")
	fs.StringVarP(&opts.output, "output", "o", "", "output PNG")
	fs.IntVar(&opts.width, "width", defaultWidth, "cell width in pixels")
	fs.IntVar(&opts.cols, "cols", 3, "cells across")
	fs.IntVar(&opts.rows, "rows", 3, "cells down")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runRender(global *globalOptions, opts *renderOptions) error {
	height := kaleido.HeightFor(opts.width)
	if err := kaleido.CheckDimensions(opts.width, height); err != nil {
		return err
	}
	src, err := loadWedge(opts.input, opts.width, height)
	if err != nil {
		return err
	}

	pool := workerpool.New(global.workers)
	defer pool.Close()

	start := time.Now()
	out, err := kaleido.Render(pool, src, opts.cols, opts.rows)
	if err != nil {
		return err
	}
	slog.Debug("rendered", "cell", fmt.Sprintf("%dx%d", opts.width, height),
		"grid", fmt.Sprintf("%dx%d", opts.cols, opts.rows), "elapsed", time.Since(start))

	if err := writePNG(opts.output, image.ToNRGBA(out)); err != nil {
		return err
	}
	slog.Info("wrote kaleidoscope", "path", opts.output, "width", out.Width(), "height", out.Height())
	return nil
}

// loadWedge decodes path and fits it to one width x height cell.
func loadWedge(path string, width, height int) (*image.Image3[float32], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	img, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	b := img.Bounds()
	slog.Debug("decoded input", "path", path, "width", b.Dx(), "height", b.Dy())
	return image.FromImage(image.Fit(img, width, height)), nil
}

func writePNG(path string, img stdimage.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return image.EncodePNG(f, img)
}
