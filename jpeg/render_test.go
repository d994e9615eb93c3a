package jpeg

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func grayPlane(w, h int, pix []byte) *image.Gray {
	p := image.NewGray(image.Rect(0, 0, w, h))
	copy(p.Pix, pix)
	return p
}

func TestMagnifyX(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		pix  []byte
		want []byte
	}{
		{
			name: "ramp",
			w:    2, h: 1,
			pix: []byte{0, 255},
			// Edges copy; interiors weight the nearer sample 3:1.
			want: []byte{0, 64, 191, 255},
		},
		{
			name: "single column",
			w:    1, h: 2,
			pix:  []byte{9, 200},
			want: []byte{9, 9, 200, 200},
		},
		{
			name: "interior",
			w:    4, h: 1,
			pix:  []byte{0, 100, 200, 100},
			want: []byte{0, 25, 75, 125, 175, 175, 125, 100},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := magnifyX(grayPlane(tc.w, tc.h, tc.pix))
			if got.Rect.Dx() != tc.w*2 || got.Rect.Dy() != tc.h {
				t.Fatalf("dimensions %dx%d, want %dx%d", got.Rect.Dx(), got.Rect.Dy(), tc.w*2, tc.h)
			}
			if diff := cmp.Diff(tc.want, got.Pix); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMagnifyY(t *testing.T) {
	got := magnifyY(grayPlane(1, 2, []byte{0, 255}))
	want := []byte{0, 64, 191, 255}
	if got.Rect.Dx() != 1 || got.Rect.Dy() != 4 {
		t.Fatalf("dimensions %dx%d, want 1x4", got.Rect.Dx(), got.Rect.Dy())
	}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

// TestMagnifyConstant: a flat plane stays flat through repeated doubling in
// both axes, which is what keeps neutral chroma neutral after upsampling.
func TestMagnifyConstant(t *testing.T) {
	p := grayPlane(2, 2, []byte{128, 128, 128, 128})
	p = magnifyY(magnifyX(magnifyY(magnifyX(p))))
	if p.Rect.Dx() != 8 || p.Rect.Dy() != 8 {
		t.Fatalf("dimensions %dx%d, want 8x8", p.Rect.Dx(), p.Rect.Dy())
	}
	for i, v := range p.Pix {
		if v != 128 {
			t.Fatalf("pixel %d = %d, want 128", i, v)
		}
	}
}

func TestYCbCrConversion(t *testing.T) {
	tests := []struct {
		y, cb, cr byte
		want      [4]byte
	}{
		{128, 128, 128, [4]byte{128, 128, 128, 255}},
		{255, 128, 128, [4]byte{255, 255, 255, 255}},
		{0, 128, 128, [4]byte{0, 0, 0, 255}},
		// Pure Cr: r clamps high, g = (yy - 127*fixCr0_71414) >> 20.
		{128, 128, 255, [4]byte{255, 37, 128, 255}},
		// Pure Cb: b clamps high, g picks up the masked Cb term.
		{128, 255, 128, [4]byte{128, 84, 255, 255}},
	}
	for _, tc := range tests {
		d := &decoder{width: 1, height: 1, maxH: 1, maxV: 1}
		d.components = []*component{
			{plane: grayPlane(1, 1, []byte{tc.y})},
			{plane: grayPlane(1, 1, []byte{tc.cb})},
			{plane: grayPlane(1, 1, []byte{tc.cr})},
		}
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		d.renderYCbCr(img)
		got := [4]byte{img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3]}
		if got != tc.want {
			t.Errorf("ycbcr(%d,%d,%d) = %v, want %v", tc.y, tc.cb, tc.cr, got, tc.want)
		}
	}
}

func TestRenderGray(t *testing.T) {
	d := &decoder{width: 2, height: 1, maxH: 1, maxV: 1}
	d.components = []*component{{plane: grayPlane(2, 1, []byte{7, 250})}}
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	d.renderGray(img)
	want := []byte{7, 7, 7, 255, 250, 250, 250, 255}
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}
