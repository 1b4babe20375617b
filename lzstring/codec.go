package lzstring

type bitWriter struct {
	bitsPerChar int
	toChar      func(int) byte
	val         int
	position    int
	out         []byte
}

func (w *bitWriter) writeBit(bit int) {
	w.val = (w.val << 1) | bit
	if w.position == w.bitsPerChar-1 {
		w.position = 0
		w.out = append(w.out, w.toChar(w.val))
		w.val = 0
		return
	}
	w.position++
}

// writeBits writes the low n bits of value, least significant first.
func (w *bitWriter) writeBits(n, value int) {
	for i := 0; i < n; i++ {
		w.writeBit(value & 1)
		value >>= 1
	}
}

func (w *bitWriter) flush() {
	for {
		w.val <<= 1
		if w.position == w.bitsPerChar-1 {
			w.out = append(w.out, w.toChar(w.val))
			return
		}
		w.position++
	}
}

func unitsKey(units []uint16) string {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		b[2*i] = byte(u >> 8)
		b[2*i+1] = byte(u)
	}
	return string(b)
}

func compress(units []uint16, bitsPerChar int, toChar func(int) byte) string {
	dictionary := make(map[string]int)
	pending := make(map[string]bool)
	enlargeIn, dictSize, numBits := 2, 3, 2
	bw := &bitWriter{bitsPerChar: bitsPerChar, toChar: toChar}

	grow := func() {
		enlargeIn--
		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}

	var w []uint16
	emit := func() {
		key := unitsKey(w)
		if pending[key] {
			if w[0] < 256 {
				bw.writeBits(numBits, 0)
				bw.writeBits(8, int(w[0]))
			} else {
				bw.writeBits(numBits, 1)
				bw.writeBits(16, int(w[0]))
			}
			grow()
			delete(pending, key)
		} else {
			bw.writeBits(numBits, dictionary[key])
		}
		grow()
	}

	for _, u := range units {
		c := []uint16{u}
		ck := unitsKey(c)
		if _, ok := dictionary[ck]; !ok {
			dictionary[ck] = dictSize
			dictSize++
			pending[ck] = true
		}

		wc := append(append(make([]uint16, 0, len(w)+1), w...), u)
		wck := unitsKey(wc)
		if _, ok := dictionary[wck]; ok {
			w = wc
			continue
		}
		emit()
		dictionary[wck] = dictSize
		dictSize++
		w = c
	}

	if len(w) > 0 {
		emit()
	}

	// end of stream marker
	bw.writeBits(numBits, 2)
	bw.flush()
	return string(bw.out)
}

type bitReader struct {
	resetValue int
	next       func(int) int
	val        int
	position   int
	index      int
}

func (r *bitReader) readBits(n int) int {
	bits := 0
	maxPower := 1 << n
	for power := 1; power != maxPower; power <<= 1 {
		resb := r.val & r.position
		r.position >>= 1
		if r.position == 0 {
			r.position = r.resetValue
			r.val = r.next(r.index)
			r.index++
		}
		if resb > 0 {
			bits |= power
		}
	}
	return bits
}

func concat(a []uint16, b uint16) []uint16 {
	return append(append(make([]uint16, 0, len(a)+1), a...), b)
}

func decompress(length, resetValue, maxUnits int, next func(int) int) ([]uint16, error) {
	r := &bitReader{resetValue: resetValue, next: next, val: next(0), position: resetValue, index: 1}

	// codes 0-2 are control codes, never looked up
	dictionary := make([][]uint16, 3, 16)
	enlargeIn, numBits := 4, 3

	var c []uint16
	switch r.readBits(2) {
	case 0:
		c = []uint16{uint16(r.readBits(8))}
	case 1:
		c = []uint16{uint16(r.readBits(16))}
	case 2:
		return nil, nil
	default:
		return nil, ErrInvalidInput
	}
	dictionary = append(dictionary, c)
	w := c
	result := append([]uint16(nil), c...)

	for {
		if r.index > length {
			return nil, ErrInvalidInput
		}

		code := r.readBits(numBits)
		switch code {
		case 0:
			dictionary = append(dictionary, []uint16{uint16(r.readBits(8))})
			code = len(dictionary) - 1
			enlargeIn--
		case 1:
			dictionary = append(dictionary, []uint16{uint16(r.readBits(16))})
			code = len(dictionary) - 1
			enlargeIn--
		case 2:
			return result, nil
		}

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}

		var entry []uint16
		switch {
		case code < len(dictionary):
			entry = dictionary[code]
		case code == len(dictionary):
			entry = concat(w, w[0])
		default:
			return nil, ErrInvalidInput
		}
		if maxUnits > 0 && len(result)+len(entry) > maxUnits {
			return nil, ErrOutputTooLarge
		}
		result = append(result, entry...)

		dictionary = append(dictionary, concat(w, entry[0]))
		enlargeIn--
		w = entry

		if enlargeIn == 0 {
			enlargeIn = 1 << numBits
			numBits++
		}
	}
}
