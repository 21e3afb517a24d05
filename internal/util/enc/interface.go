package enc

// Encoding is a binary-to-text transcoder. S is the value produced on success by both
// directions; failures are reported through the error.
type Encoding[S any] interface {
	// Encode will take an array of bytes and encode it using this encoding
	Encode(src []byte) (S, error)

	// Decode is the reverse process of encoding
	Decode(src []byte) (S, error)
}

// Input is anything that can be viewed as a sequence of bytes
type Input interface {
	~[]byte | ~string
}

// Codec is an Encoding[string] which can also describe itself
type Codec interface {
	Encoding[string]

	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte
	// String returns the name and the code, e.g. "Standard(S)"
	String() string
	// Padded returns true if the output is padded to a multiple of 4 characters
	Padded() bool
	// Alphabet returns the 64 symbols in index order
	Alphabet() string
}

// Encode forwards to e.Encode
func Encode[S any, I Input](e Encoding[S], input I) (S, error) {
	return e.Encode([]byte(input))
}

// Decode forwards to e.Decode
func Decode[S any, I Input](e Encoding[S], input I) (S, error) {
	return e.Decode([]byte(input))
}
