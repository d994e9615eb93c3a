package jpeg

import "image"

// Fixed-point Rec. 601 multipliers: round(k * 4096) << 8, so channel sums
// carry 20 fractional bits.
const (
	fixCr1_40200 = 5743 << 8
	fixCb0_34414 = 1410 << 8
	fixCr0_71414 = 2925 << 8
	fixCb1_77200 = 7258 << 8
)

// render turns the accumulated coefficient blocks into the output image:
// dequantize + IDCT per block into MCU-aligned planes, upsample every
// component to the maximum sampling factors, then color convert into an
// RGBA image of exactly the frame dimensions.
func (d *decoder) render() (*image.RGBA, error) {
	for _, c := range d.components {
		c.plane = image.NewGray(image.Rect(0, 0, c.blocksPerLine*8, c.blockLines*8))
		q := &d.quant[c.quantID]
		for row := 0; row < c.blockLines; row++ {
			for col := 0; col < c.blocksPerLine; col++ {
				off := row*8*c.plane.Stride + col*8
				idctBlock(c.blockAt(row, col), q, c.plane.Pix[off:], c.plane.Stride)
			}
		}
	}

	for _, c := range d.components {
		h, v := c.h, c.v
		for h < d.maxH {
			c.plane = magnifyX(c.plane)
			h *= 2
		}
		for v < d.maxV {
			c.plane = magnifyY(c.plane)
			v *= 2
		}
		if h != d.maxH || v != d.maxV {
			return nil, errorf("unsupported sampling ratio %dx%d of %dx%d", c.h, c.v, d.maxH, d.maxV)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, d.width, d.height))
	if len(d.components) == 1 {
		d.renderGray(img)
	} else {
		d.renderYCbCr(img)
	}
	return img, nil
}

// renderGray replicates the luma plane into R, G and B.
func (d *decoder) renderGray(img *image.RGBA) {
	p := d.components[0].plane
	for y := 0; y < d.height; y++ {
		src := p.Pix[y*p.Stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < d.width; x++ {
			v := src[x]
			dst[4*x+0] = v
			dst[4*x+1] = v
			dst[4*x+2] = v
			dst[4*x+3] = 255
		}
	}
}

// renderYCbCr converts the three upsampled planes to RGBA. The green Cb
// term is masked with &-65536 to emulate truncation of the low 16 bits of
// the fixed-point combination.
func (d *decoder) renderYCbCr(img *image.RGBA) {
	yp := d.components[0].plane
	cbp := d.components[1].plane
	crp := d.components[2].plane
	for y := 0; y < d.height; y++ {
		yrow := yp.Pix[y*yp.Stride:]
		cbrow := cbp.Pix[y*cbp.Stride:]
		crrow := crp.Pix[y*crp.Stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < d.width; x++ {
			yy := int32(yrow[x])<<20 + 1<<19
			cb := int32(cbrow[x]) - 128
			cr := int32(crrow[x]) - 128
			r := yy + cr*fixCr1_40200
			g := yy - cr*fixCr0_71414 + (cb*-fixCb0_34414)&-65536
			b := yy + cb*fixCb1_77200
			dst[4*x+0] = clampByte(r >> 20)
			dst[4*x+1] = clampByte(g >> 20)
			dst[4*x+2] = clampByte(b >> 20)
			dst[4*x+3] = 255
		}
	}
}

// magnifyX doubles a plane horizontally with a 3:1 triangle filter. The
// outermost outputs copy the edge samples; interior outputs weight the
// nearer source sample 3:1 against its neighbor.
func magnifyX(src *image.Gray) *image.Gray {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w*2, h))
	for y := 0; y < h; y++ {
		srow := src.Pix[y*src.Stride:]
		drow := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			c := 3 * int(srow[x])
			if x == 0 {
				drow[0] = srow[0]
			} else {
				drow[2*x] = byte((c + int(srow[x-1]) + 2) / 4)
			}
			if x == w-1 {
				drow[2*x+1] = srow[x]
			} else {
				drow[2*x+1] = byte((c + int(srow[x+1]) + 2) / 4)
			}
		}
	}
	return dst
}

// magnifyY doubles a plane vertically; same kernel as magnifyX.
func magnifyY(src *image.Gray) *image.Gray {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h*2))
	for y := 0; y < h; y++ {
		srow := src.Pix[y*src.Stride:]
		var above, below []byte
		if y > 0 {
			above = src.Pix[(y-1)*src.Stride:]
		}
		if y < h-1 {
			below = src.Pix[(y+1)*src.Stride:]
		}
		drow0 := dst.Pix[2*y*dst.Stride:]
		drow1 := dst.Pix[(2*y+1)*dst.Stride:]
		for x := 0; x < w; x++ {
			c := 3 * int(srow[x])
			if above == nil {
				drow0[x] = srow[x]
			} else {
				drow0[x] = byte((c + int(above[x]) + 2) / 4)
			}
			if below == nil {
				drow1[x] = srow[x]
			} else {
				drow1[x] = byte((c + int(below[x]) + 2) / 4)
			}
		}
	}
	return dst
}
