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

// Command kaleido turns a picture into a kaleidoscope.
//
// Usage:
//
//	kaleido render -i photo.jpg -o out.png --width 200 --cols 4 --rows 3
//	kaleido maps -o debug/ --width 120
//
// render fits the input to one triangular cell (W x HeightFor(W)), builds
// the kaleidoscope map for a cols x rows grid of cells and resamples the
// input with it. maps writes the intermediate masks and sub-map previews
// for inspection.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultWidth = 200

type globalOptions struct {
	verbose bool
	workers int
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "kaleido",
		Short:         "Render kaleidoscope images from a triangular wedge",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	addGlobalFlags(root.PersistentFlags(), opts)
	root.AddCommand(newRenderCmd(opts), newMapsCmd(opts))
	return root
}

func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	fs.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "number of worker goroutines")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
