package jpeg

import "image"

const maxComponents = 3

// block holds the 64 DCT coefficients of one 8x8 data unit in natural
// (row-major) order.
type block [64]int16

// component is one color channel of the frame. The block grid and the
// sample plane are MCU-aligned; widthPx/heightPx are the cropped extents
// actually covered by image pixels.
type component struct {
	id      byte
	h, v    int // sampling factors, 1..4
	quantID byte

	// Huffman table selectors, set per scan.
	dcTableID byte
	acTableID byte

	// dcPred is the running DC predictor for the current scan.
	dcPred int32

	widthPx  int
	heightPx int

	// blocksPerLine x blockLines grid of coefficient blocks, row-major.
	blocksPerLine int
	blockLines    int
	blocks        []block

	// plane receives the dequantized, inverse-transformed samples.
	plane *image.Gray
}

func (c *component) blockAt(row, col int) *block {
	return &c.blocks[row*c.blocksPerLine+col]
}

// nonInterleavedSize is the block grid actually coded by a single-component
// scan: the cropped extents rounded up to whole blocks.
func (c *component) nonInterleavedSize() (wide, high int) {
	return (c.widthPx + 7) / 8, (c.heightPx + 7) / 8
}
