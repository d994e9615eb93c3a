package jpeg

// decodeScan runs the entropy-coded portion that follows an SOS marker.
// The bit accumulator is reset, DC predictors are zeroed, the EOB run is
// cleared, and the restart countdown is seeded from the restart interval.
func (d *decoder) decodeScan() error {
	d.resetBits()
	for _, c := range d.components {
		c.dcPred = 0
	}
	d.eobRun = 0
	d.todo = maxInterval
	if d.restartInterval > 0 {
		d.todo = d.restartInterval
	}

	if len(d.scanComponents) == 1 {
		// Non-interleaved: one block per unit over the component's cropped
		// block grid.
		c := d.scanComponents[0]
		wide, high := c.nonInterleavedSize()
		units := wide * high
		unit := 0
		for row := 0; row < high; row++ {
			for col := 0; col < wide; col++ {
				if err := d.decodeBlock(c, row, col); err != nil {
					return err
				}
				unit++
				if err := d.completedUnit(unit < units); err != nil {
					return err
				}
			}
		}
		return nil
	}

	// Interleaved: one MCU per unit; within the MCU, components in scan
	// order, and within a component its v x h blocks in row-major order.
	units := d.mcuWide * d.mcuHigh
	unit := 0
	for mcuY := 0; mcuY < d.mcuHigh; mcuY++ {
		for mcuX := 0; mcuX < d.mcuWide; mcuX++ {
			for _, c := range d.scanComponents {
				for cy := 0; cy < c.v; cy++ {
					for cx := 0; cx < c.h; cx++ {
						if err := d.decodeBlock(c, mcuY*c.v+cy, mcuX*c.h+cx); err != nil {
							return err
						}
					}
				}
			}
			unit++
			if err := d.completedUnit(unit < units); err != nil {
				return err
			}
		}
	}
	return nil
}

// completedUnit decrements the restart countdown and, when it expires with
// more units still to decode, consumes the RSTn marker and resets the
// entropy state.
func (d *decoder) completedUnit(more bool) error {
	d.todo--
	if d.todo > 0 || !more {
		return nil
	}
	if d.pos+2 > len(d.data) || d.data[d.pos] != 0xff ||
		d.data[d.pos+1] < markerRST0 || d.data[d.pos+1] > markerRST7 {
		return newError("missing restart marker")
	}
	d.pos += 2
	d.resetBits()
	for _, c := range d.components {
		c.dcPred = 0
	}
	d.eobRun = 0
	d.todo = d.restartInterval
	return nil
}

// decodeBlock routes one block to the routine selected by the progressive
// flag and the scan's spectral range.
func (d *decoder) decodeBlock(c *component, row, col int) error {
	b := c.blockAt(row, col)
	switch {
	case !d.progressive:
		return d.decodeBaselineBlock(c, b)
	case d.spectralStart == 0 && d.successiveHigh == 0:
		return d.decodeDCFirst(c, b)
	case d.spectralStart == 0:
		return d.decodeDCRefine(b)
	case d.successiveHigh == 0:
		return d.decodeACFirst(c, b)
	default:
		return d.decodeACRefine(c, b)
	}
}

// decodeBaselineBlock decodes a full DC+AC sequential block.
func (d *decoder) decodeBaselineBlock(c *component, b *block) error {
	t, err := d.decodeHuffman(d.huffDC[c.dcTableID])
	if err != nil {
		return err
	}
	if t > 15 {
		return newError("bad DC category")
	}
	diff, err := d.receiveExtend(int(t))
	if err != nil {
		return err
	}
	c.dcPred += diff
	b[0] = int16(c.dcPred)

	acTable := d.huffAC[c.acTableID]
	for k := 1; k < 64; {
		rs, err := d.decodeHuffman(acTable)
		if err != nil {
			return err
		}
		s := rs & 0x0f
		r := int(rs >> 4)
		if s == 0 {
			if rs != 0xf0 {
				break // EOB
			}
			k += 16
			continue
		}
		k += r
		if k >= 64 {
			return newError("zigzag index out of range")
		}
		v, err := d.receiveExtend(int(s))
		if err != nil {
			return err
		}
		b[zigzag[k]] = int16(v)
		k++
	}
	return nil
}

// decodeDCFirst decodes the DC coefficient's high bit-planes in a
// progressive first scan.
func (d *decoder) decodeDCFirst(c *component, b *block) error {
	t, err := d.decodeHuffman(d.huffDC[c.dcTableID])
	if err != nil {
		return err
	}
	if t > 15 {
		return newError("bad DC category")
	}
	diff, err := d.receiveExtend(int(t))
	if err != nil {
		return err
	}
	c.dcPred += diff
	b[0] = int16(c.dcPred << uint(d.successiveLow))
	return nil
}

// decodeDCRefine adds one DC bit-plane.
func (d *decoder) decodeDCRefine(b *block) error {
	bit, err := d.getBits(1)
	if err != nil {
		return err
	}
	if bit != 0 {
		b[0] |= 1 << uint(d.successiveLow)
	}
	return nil
}

// decodeACFirst decodes AC coefficients' high bit-planes over the scan's
// spectral range.
func (d *decoder) decodeACFirst(c *component, b *block) error {
	if d.eobRun > 0 {
		d.eobRun--
		return nil
	}
	acTable := d.huffAC[c.acTableID]
	for k := d.spectralStart; k <= d.spectralEnd; {
		rs, err := d.decodeHuffman(acTable)
		if err != nil {
			return err
		}
		s := rs & 0x0f
		r := int(rs >> 4)
		if s == 0 {
			if r < 15 {
				// EOB run: this block plus (1<<r)-1+bits more.
				bits, err := d.getBits(r)
				if err != nil {
					return err
				}
				d.eobRun = 1<<uint(r) - 1 + int(bits)
				return nil
			}
			k += 16
			continue
		}
		k += r
		if k > d.spectralEnd {
			return newError("zigzag index out of range")
		}
		v, err := d.receiveExtend(int(s))
		if err != nil {
			return err
		}
		b[zigzag[k]] = int16(v << uint(d.successiveLow))
		k++
	}
	return nil
}

// decodeACRefine adds one bit-plane to AC coefficients over the scan's
// spectral range. Already-nonzero coefficients consume a correction bit;
// new coefficients arrive as +-(1<<successiveLow).
func (d *decoder) decodeACRefine(c *component, b *block) error {
	bit := int16(1) << uint(d.successiveLow)

	if d.eobRun > 0 {
		d.eobRun--
		return d.refineNonZeroes(b, d.spectralStart, bit)
	}

	acTable := d.huffAC[c.acTableID]
	for k := d.spectralStart; k <= d.spectralEnd; {
		rs, err := d.decodeHuffman(acTable)
		if err != nil {
			return err
		}
		s := rs & 0x0f
		r := int(rs >> 4)
		var v int16
		switch s {
		case 0:
			if r < 15 {
				bits, err := d.getBits(r)
				if err != nil {
					return err
				}
				d.eobRun = 1<<uint(r) - 1 + int(bits)
				// Only correction bits remain for this block.
				r = 64
			}
			// r == 15: a 16-coefficient skip, as in the first-scan path.
		case 1:
			sign, err := d.getBits(1)
			if err != nil {
				return err
			}
			if sign != 0 {
				v = bit
			} else {
				v = -bit
			}
		default:
			return newError("bad coefficient size in AC refinement")
		}

		// Advance past r zero-history coefficients, refining every nonzero
		// one on the way, then deposit the new value if there is one.
		for k <= d.spectralEnd {
			p := &b[zigzag[k]]
			k++
			if *p != 0 {
				if err := d.refineCoefficient(p, bit); err != nil {
					return err
				}
				continue
			}
			if r == 0 {
				if s != 0 {
					*p = v
				}
				break
			}
			r--
		}
	}
	return nil
}

// refineNonZeroes consumes one correction bit for every nonzero coefficient
// in [from, spectralEnd]; used for blocks inside an EOB run.
func (d *decoder) refineNonZeroes(b *block, from int, bit int16) error {
	for k := from; k <= d.spectralEnd; k++ {
		p := &b[zigzag[k]]
		if *p != 0 {
			if err := d.refineCoefficient(p, bit); err != nil {
				return err
			}
		}
	}
	return nil
}

// refineCoefficient applies one correction bit, moving the coefficient away
// from zero so its sign is preserved.
func (d *decoder) refineCoefficient(p *int16, bit int16) error {
	n, err := d.getBits(1)
	if err != nil {
		return err
	}
	if n != 0 && *p&bit == 0 {
		if *p > 0 {
			*p += bit
		} else {
			*p -= bit
		}
	}
	return nil
}
