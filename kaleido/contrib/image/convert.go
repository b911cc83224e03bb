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

package image

import (
	"fmt"
	stdimage "image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// FromImage converts any image.Image into three float32 planes holding
// R, G and B in the range [0, 255]. Alpha is dropped.
func FromImage(src stdimage.Image) *Image3[float32] {
	b := src.Bounds()
	out := NewImage3[float32](b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		r, g, bl := out.planes[0].RowSlice(y), out.planes[1].RowSlice(y), out.planes[2].RowSlice(y)
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			r[x], g[x], bl[x] = float32(c.R), float32(c.G), float32(c.B)
		}
	}
	return out
}

// ToNRGBA converts three [0, 255] planes into an opaque image.NRGBA,
// clamping out-of-range values.
func ToNRGBA(img *Image3[float32]) *stdimage.NRGBA {
	w, h := img.Width(), img.Height()
	out := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		r, g, b := img.planes[0].RowSlice(y), img.planes[1].RowSlice(y), img.planes[2].RowSlice(y)
		for x := 0; x < w; x++ {
			out.SetNRGBA(x, y, color.NRGBA{R: toByte(r[x]), G: toByte(g[x]), B: toByte(b[x]), A: 0xff})
		}
	}
	return out
}

// MaskToGray converts an 8-bit mask or plane into an image.Gray.
func MaskToGray(mask *Image[uint8]) *stdimage.Gray {
	out := stdimage.NewGray(stdimage.Rect(0, 0, mask.Width(), mask.Height()))
	for y := 0; y < mask.Height(); y++ {
		copy(out.Pix[y*out.Stride:], mask.RowSlice(y))
	}
	return out
}

func toByte(v float32) uint8 {
	v = math32.Max(0, math32.Min(255, v))
	return uint8(v + 0.5)
}

// Fit centre-crops src to the aspect ratio width:height and scales the crop
// to exactly width x height with a Catmull-Rom filter.
func Fit(src stdimage.Image, width, height int) *stdimage.NRGBA {
	dst := stdimage.NewNRGBA(stdimage.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	b := src.Bounds()
	cw, ch := b.Dx(), b.Dy()
	// Keep the largest crop with the destination aspect ratio.
	if cw*height > ch*width {
		cw = ch * width / height
	} else {
		ch = cw * height / width
	}
	cw, ch = Clamp(cw, b.Dx()+1), Clamp(ch, b.Dy()+1)
	x0 := b.Min.X + (b.Dx()-cw)/2
	y0 := b.Min.Y + (b.Dy()-ch)/2
	crop := stdimage.Rect(x0, y0, x0+cw, y0+ch)

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}

// Decode reads a PNG, JPEG, GIF or WebP image.
func Decode(r io.Reader) (stdimage.Image, error) {
	img, _, err := stdimage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img stdimage.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
