package kyber

import "math"

// roundUpTies rounds x to the nearest integer, with ties (fractional part
// exactly 0.5) always rounded toward +infinity: 0.5 -> 1, -0.5 -> 0,
// -1.5 -> -1.
func roundUpTies(x float64) int64 {
	f := math.Floor(x)
	if x-f == 0.5 {
		return int64(f) + 1
	}
	return int64(math.Round(x))
}

// mods returns the symmetric representative of v modulo q, mapped into
// (-q/2, q/2].
func mods(v int64, q int64) int64 {
	m := ((v + q/2) % q)
	if m < 0 {
		m += q
	}
	return m - q/2
}

// roundQ decides the message bit encoded by a noisy coefficient: 0 if the
// symmetric representative lies strictly within (-q/4, q/4), else 1.
func roundQ(v int64, q int64) int {
	s := float64(mods(v, q))
	qf := float64(q)
	if -qf/4 < s && s < qf/4 {
		return 0
	}
	return 1
}

// compress maps a coefficient in [0, q) down to [0, 2^d).
func compress(x int64, q int64, d int) int64 {
	scale := float64(int64(1) << uint(d))
	v := roundUpTies(scale * float64(x) / float64(q))
	mod := int64(1) << uint(d)
	v %= mod
	if v < 0 {
		v += mod
	}
	return v
}

// decompress is the approximate inverse of compress, mapping [0, 2^d) back
// up to [0, q).
func decompress(y int64, q int64, d int) int64 {
	scale := float64(int64(1) << uint(d))
	v := roundUpTies(float64(q) * float64(y) / scale)
	v %= q
	if v < 0 {
		v += q
	}
	return v
}

// compressPoly compresses every coefficient of p (modulus q) to modulus
// 2^d, coefficient-wise.
func compressPoly(p *poly, d int) *poly {
	out := newPoly(int32(int64(1) << uint(d)))
	for i, c := range p.coeffs {
		out.coeffs[i] = int32(compress(int64(c), int64(p.q), d))
	}
	return out
}

// decompressPoly decompresses every coefficient of p (modulus 2^d) back to
// modulus q, coefficient-wise.
func decompressPoly(p *poly, q int32, d int) *poly {
	out := newPoly(q)
	for i, c := range p.coeffs {
		out.coeffs[i] = int32(decompress(int64(c), int64(q), d))
	}
	return out
}

func compressVec(v *polyVec, d int) *polyVec {
	out := &polyVec{vec: make([]*poly, len(v.vec)), q: int32(int64(1) << uint(d))}
	for i, p := range v.vec {
		out.vec[i] = compressPoly(p, d)
	}
	return out
}

func decompressVec(v *polyVec, q int32, d int) *polyVec {
	out := &polyVec{vec: make([]*poly, len(v.vec)), q: q}
	for i, p := range v.vec {
		out.vec[i] = decompressPoly(p, q, d)
	}
	return out
}

// encodePoly bit-packs p's coefficients, l bits per coefficient,
// least-significant-bit first within each coefficient, grouped into bytes
// most-significant-bit first within each byte.
func encodePoly(p *poly, l int) []byte {
	bits := make([]byte, 0, kyberN*l)
	for _, c := range p.coeffs {
		for j := 0; j < l; j++ {
			bits = append(bits, byte((c>>uint(j))&1))
		}
	}
	return packBitsMSB(bits)
}

// encodeVec concatenates encodePoly(v[i], l) for each polynomial in v, with
// no padding between blocks.
func encodeVec(v *polyVec, l int) []byte {
	out := make([]byte, 0, len(v.vec)*kyberN*l/8)
	for _, p := range v.vec {
		out = append(out, encodePoly(p, l)...)
	}
	return out
}

// packBitsMSB is the inverse of unpackBitsMSB: groups a 0/1 byte slice into
// bytes, most-significant-bit first within each byte. A trailing partial
// group (if any) is padded with zero bits.
func packBitsMSB(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit == 0 {
			continue
		}
		out[i/8] |= 1 << uint(7-(i%8))
	}
	return out
}

// decodePoly is the inverse of encodePoly: unpack bytes MSB-first per byte,
// then reassemble each coefficient LSB-first from l bits, reducing mod q.
// If data is short, it is treated as zero-padded on the right.
func decodePoly(data []byte, q int32, l int) *poly {
	bits := unpackBitsMSB(data)
	required := kyberN * l
	if len(bits) < required {
		padded := make([]byte, required)
		copy(padded, bits)
		bits = padded
	}

	p := newPoly(q)
	for i := 0; i < kyberN; i++ {
		var c int64
		for j := 0; j < l; j++ {
			c += int64(bits[i*l+j]) << uint(j)
		}
		p.coeffs[i] = normalize(c, q)
	}
	return p
}

// decodeVec is the inverse of encodeVec: splits data into k equal
// per-polynomial blocks and decodes each with decodePoly.
func decodeVec(data []byte, q int32, l, k int) *polyVec {
	blockBytes := kyberN * l / 8
	v := newPolyVec(k, q)
	for i := 0; i < k; i++ {
		start := i * blockBytes
		end := start + blockBytes
		var block []byte
		if start < len(data) {
			if end > len(data) {
				end = len(data)
			}
			block = data[start:end]
		}
		v.vec[i] = decodePoly(block, q, l)
	}
	return v
}

// preprocessMessage interprets msg as a bit string, most-significant-bit
// first per byte, right-padded with zero bits to length n.
func preprocessMessage(msg []byte, n int) []byte {
	bits := unpackBitsMSB(msg)
	if len(bits) >= n {
		return bits[:n]
	}
	out := make([]byte, n)
	copy(out, bits)
	return out
}

// postprocessMessage truncates bits to originalLength bits and reassembles
// bytes most-significant-bit first.
func postprocessMessage(bits []byte, originalLength int) []byte {
	if originalLength < len(bits) {
		bits = bits[:originalLength]
	}
	return packBitsMSB(bits)
}

// bytesToBitList converts data to a bit list of length n (MSB-first per
// byte), truncating or zero-padding on the right as needed.
func bytesToBitList(data []byte, n int) []byte {
	bits := unpackBitsMSB(data)
	if len(bits) >= n {
		return bits[:n]
	}
	out := make([]byte, n)
	copy(out, bits)
	return out
}

// bitListToBytes packs a bit list into bytes, MSB-first within each byte,
// zero-padding the final byte if the bit count isn't a multiple of 8.
func bitListToBytes(bits []byte) []byte {
	return packBitsMSB(bits)
}
