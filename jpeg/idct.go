package jpeg

// zigzag maps zigzag scan positions to natural (row-major) 8x8 indices.
var zigzag = [64]byte{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// AAN-factorization multipliers, round(k * 4096).
const (
	fix0_298631336 = 1223
	fix0_390180644 = 1598
	fix0_541196100 = 2217
	fix0_765366865 = 3135
	fix0_899976223 = 3686
	fix1_175875602 = 4816
	fix1_501321110 = 6149
	fix1_847759065 = 7568
	fix1_961570560 = 8035
	fix2_053119869 = 8410
	fix2_562915447 = 10498
	fix3_072711026 = 12586
)

// idct1D is one pass of the eight-point transform. The even half (s0, s2,
// s4, s6) lands in x0..x3 and the odd half (s1, s3, s5, s7) in t0..t3; the
// caller interleaves them as (x0+t3, x1+t2, x2+t1, x3+t0) and mirrored.
// Two's-complement wrap is fine here: the inputs are bounded so nothing
// escapes the signed 32-bit range before the caller clamps.
func idct1D(s0, s1, s2, s3, s4, s5, s6, s7 int32) (x0, x1, x2, x3, t0, t1, t2, t3 int32) {
	p2 := s2
	p3 := s6
	p1 := (p2 + p3) * fix0_541196100
	t2 = p1 - p3*fix1_847759065
	t3 = p1 + p2*fix0_765366865
	p2 = s0
	p3 = s4
	t0 = (p2 + p3) << 12
	t1 = (p2 - p3) << 12
	x0 = t0 + t3
	x3 = t0 - t3
	x1 = t1 + t2
	x2 = t1 - t2

	t0 = s7
	t1 = s5
	t2 = s3
	t3 = s1
	p3 = t0 + t2
	p4 := t1 + t3
	p1 = t0 + t3
	p2 = t1 + t2
	p5 := (p3 + p4) * fix1_175875602
	t0 *= fix0_298631336
	t1 *= fix2_053119869
	t2 *= fix3_072711026
	t3 *= fix1_501321110
	p1 = p5 - p1*fix0_899976223
	p2 = p5 - p2*fix2_562915447
	p3 *= -fix1_961570560
	p4 *= -fix0_390180644
	t3 += p1 + p4
	t2 += p2 + p3
	t1 += p2 + p4
	t0 += p1 + p3
	return
}

// idctBlock dequantizes one coefficient block and writes the inverse
// transform into dst (a sample plane) at the given stride. The first pass
// runs down columns with a +512 bias and a 10-bit shift; the second runs
// across rows with a +65536+(128<<17) bias and a 17-bit shift, folding in
// the level shift from the signed DCT domain, then clamps to a byte.
func idctBlock(b *block, quant *[64]uint16, dst []byte, stride int) {
	var tmp [64]int32

	for i := 0; i < 8; i++ {
		if b[8+i] == 0 && b[16+i] == 0 && b[24+i] == 0 && b[32+i] == 0 &&
			b[40+i] == 0 && b[48+i] == 0 && b[56+i] == 0 {
			// All-AC-zero column: the pass reduces to replicating 4*DC.
			dc := int32(b[i]) * int32(quant[i]) * 4
			for j := 0; j < 64; j += 8 {
				tmp[j+i] = dc
			}
			continue
		}
		x0, x1, x2, x3, t0, t1, t2, t3 := idct1D(
			int32(b[i])*int32(quant[i]),
			int32(b[8+i])*int32(quant[8+i]),
			int32(b[16+i])*int32(quant[16+i]),
			int32(b[24+i])*int32(quant[24+i]),
			int32(b[32+i])*int32(quant[32+i]),
			int32(b[40+i])*int32(quant[40+i]),
			int32(b[48+i])*int32(quant[48+i]),
			int32(b[56+i])*int32(quant[56+i]),
		)
		x0 += 512
		x1 += 512
		x2 += 512
		x3 += 512
		tmp[i] = (x0 + t3) >> 10
		tmp[8+i] = (x1 + t2) >> 10
		tmp[16+i] = (x2 + t1) >> 10
		tmp[24+i] = (x3 + t0) >> 10
		tmp[32+i] = (x3 - t0) >> 10
		tmp[40+i] = (x2 - t1) >> 10
		tmp[48+i] = (x1 - t2) >> 10
		tmp[56+i] = (x0 - t3) >> 10
	}

	for i := 0; i < 8; i++ {
		r := tmp[i*8 : i*8+8]
		x0, x1, x2, x3, t0, t1, t2, t3 := idct1D(
			r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7])
		bias := int32(65536 + 128<<17)
		x0 += bias
		x1 += bias
		x2 += bias
		x3 += bias
		o := dst[i*stride:]
		o[0] = clampByte((x0 + t3) >> 17)
		o[1] = clampByte((x1 + t2) >> 17)
		o[2] = clampByte((x2 + t1) >> 17)
		o[3] = clampByte((x3 + t0) >> 17)
		o[4] = clampByte((x3 - t0) >> 17)
		o[5] = clampByte((x2 - t1) >> 17)
		o[6] = clampByte((x1 - t2) >> 17)
		o[7] = clampByte((x0 - t3) >> 17)
	}
}

func clampByte(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
