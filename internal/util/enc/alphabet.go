package enc

const (
	cb64    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	cb64url = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

	// PadChar is appended by the padded variants to align the output to 4 symbols
	PadChar = '='

	invalidIndex = 0xff
)

var (
	stdAlphabet = newAlphabet(cb64)
	urlAlphabet = newAlphabet(cb64url)
)

// alphabet maps 6-bit values to symbols and back. Values are built once at package
// initialization and never written to afterwards.
type alphabet struct {
	encode [64]byte
	decode [256]byte
}

func newAlphabet(symbols string) *alphabet {
	if len(symbols) != 64 {
		panic("enc: alphabet must contain exactly 64 symbols")
	}

	a := &alphabet{}
	for i := range a.decode {
		a.decode[i] = invalidIndex
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c == PadChar || a.decode[c] != invalidIndex {
			panic("enc: alphabet contains pad or duplicate symbol " + string(c))
		}
		a.encode[i] = c
		a.decode[c] = byte(i)
	}
	return a
}

// symbols returns the alphabet in index order
func (a *alphabet) symbols() string {
	return string(a.encode[:])
}
