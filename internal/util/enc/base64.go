package enc

import "fmt"

// -------------------------------------------------------

// B64 encodes 3 bytes to 4 characters, using the alphabet and padding policy of V. It holds
// no state, so the zero value is ready to use and may be shared between goroutines.
type B64[V Variant] struct {
}

// New returns a base64 engine for the given variant
func New[V Variant]() B64[V] {
	return B64[V]{}
}

func (b B64[V]) variant() Variant {
	var v V
	return v
}

func (b B64[V]) Name() string {
	return b.variant().name()
}

func (b B64[V]) Code() byte {
	return b.variant().code()
}

func (b B64[V]) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

// Padded returns true if the encoded output is padded to a multiple of 4 characters
func (b B64[V]) Padded() bool {
	return b.variant().padded()
}

// Alphabet returns the 64 symbols of this variant, in index order
func (b B64[V]) Alphabet() string {
	return b.variant().alphabet().symbols()
}

// EncodedLen returns the length of the encoding of n bytes
func (b B64[V]) EncodedLen(n int) int {
	if b.Padded() {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

// DecodedLen returns the maximum number of bytes n encoded characters can hold
func (b B64[V]) DecodedLen(n int) int {
	if b.Padded() {
		return n / 4 * 3
	}
	return n * 6 / 8
}

// Encode implements Encoding. It never fails.
func (b B64[V]) Encode(src []byte) (string, error) {
	return b.EncodeToString(src), nil
}

// Decode implements Encoding. The decoded bytes are returned as a string.
func (b B64[V]) Decode(src []byte) (string, error) {
	res, err := b.decode(src)
	if err != nil {
		return "", err
	}
	return string(res), nil
}

// EncodeToString returns the encoding of src
func (b B64[V]) EncodeToString(src []byte) string {
	return string(b.encode(src))
}

// DecodeString returns the bytes represented by s
func (b B64[V]) DecodeString(s string) ([]byte, error) {
	return b.decode([]byte(s))
}

func (b B64[V]) encode(src []byte) []byte {
	v := b.variant()
	a := v.alphabet()
	dst := make([]byte, b.EncodedLen(len(src)))

	di, si := 0, 0
	n := len(src) / 3 * 3
	for si < n {
		val := uint(src[si])<<16 | uint(src[si+1])<<8 | uint(src[si+2])

		dst[di+0] = a.encode[val>>18&0x3f]
		dst[di+1] = a.encode[val>>12&0x3f]
		dst[di+2] = a.encode[val>>6&0x3f]
		dst[di+3] = a.encode[val&0x3f]

		si += 3
		di += 4
	}

	remain := len(src) - si
	if remain == 0 {
		return dst
	}

	// Missing bytes count as zero bits
	val := uint(src[si]) << 16
	if remain == 2 {
		val |= uint(src[si+1]) << 8
	}

	dst[di+0] = a.encode[val>>18&0x3f]
	dst[di+1] = a.encode[val>>12&0x3f]

	switch remain {
	case 2:
		dst[di+2] = a.encode[val>>6&0x3f]
		if v.padded() {
			dst[di+3] = PadChar
		}
	case 1:
		if v.padded() {
			dst[di+2] = PadChar
			dst[di+3] = PadChar
		}
	}

	return dst
}

func (b B64[V]) decode(src []byte) ([]byte, error) {
	v := b.variant()
	a := v.alphabet()
	dst := make([]byte, 0, len(src)/4*3+2)

	// Every byte must be a symbol or a pad character. Only symbols before the first pad
	// character carry data, anything after it is judged by checkPadding.
	end := len(src)
	var acc uint
	var n int
	for i, c := range src {
		if c == PadChar {
			if end == len(src) {
				end = i
			}
			continue
		}
		d := a.decode[c]
		if d == invalidIndex {
			return nil, newDecodeError(ErrInvalidSymbol, src, i)
		}
		if end < len(src) {
			continue
		}
		acc = acc<<6 | uint(d)
		n++
		if n == 4 {
			dst = append(dst, byte(acc>>16), byte(acc>>8), byte(acc))
			acc, n = 0, 0
		}
	}

	if !v.padded() && end < len(src) {
		return nil, newDecodeError(ErrInvalidPadding, src, end)
	}

	// One symbol holds only 6 bits, not enough for a byte
	if n == 1 {
		return nil, newDecodeError(ErrInvalidLength, src, end-1)
	}

	if v.padded() {
		if err := checkPadding(src, end, n); err != nil {
			return nil, err
		}
	}

	switch n {
	case 2:
		if acc&0x0f != 0 {
			return nil, newDecodeError(ErrNonCanonical, src, end-1)
		}
		dst = append(dst, byte(acc>>4))
	case 3:
		if acc&0x03 != 0 {
			return nil, newDecodeError(ErrNonCanonical, src, end-1)
		}
		dst = append(dst, byte(acc>>10), byte(acc>>2))
	}

	return dst, nil
}

// checkPadding validates src[end:] for padded variants, where end is the position of the
// first pad character and n is the number of data symbols in the last (partial) group.
func checkPadding(src []byte, end, n int) error {
	want := 0
	if n > 0 {
		want = 4 - n
	}
	for j, c := range src[end:] {
		if c != PadChar || j >= want {
			return newDecodeError(ErrInvalidPadding, src, end+j)
		}
	}
	if len(src)-end != want {
		return newDecodeError(ErrInvalidPadding, src, len(src))
	}
	return nil
}
