package enc

// Variant selects the alphabet and padding policy of a B64 engine. The set of variants
// is closed: only the four types declared here implement it.
type Variant interface {
	alphabet() *alphabet
	padded() bool
	name() string
	code() byte
}

// Standard uses the RFC 4648 standard alphabet ('+', '/') and pads with '='.
type Standard struct{}

// StandardNopad uses the standard alphabet without padding.
type StandardNopad struct{}

// UrlSafe uses the URL and filename safe alphabet ('-', '_') and pads with '='.
type UrlSafe struct{}

// UrlSafeNopad uses the URL-safe alphabet without padding.
type UrlSafeNopad struct{}

func (Standard) alphabet() *alphabet { return stdAlphabet }
func (Standard) padded() bool        { return true }
func (Standard) name() string        { return "Standard" }
func (Standard) code() byte          { return 'S' }

func (StandardNopad) alphabet() *alphabet { return stdAlphabet }
func (StandardNopad) padded() bool        { return false }
func (StandardNopad) name() string        { return "StandardNopad" }
func (StandardNopad) code() byte          { return 's' }

func (UrlSafe) alphabet() *alphabet { return urlAlphabet }
func (UrlSafe) padded() bool        { return true }
func (UrlSafe) name() string        { return "UrlSafe" }
func (UrlSafe) code() byte          { return 'U' }

func (UrlSafeNopad) alphabet() *alphabet { return urlAlphabet }
func (UrlSafeNopad) padded() bool        { return false }
func (UrlSafeNopad) name() string        { return "UrlSafeNopad" }
func (UrlSafeNopad) code() byte          { return 'u' }
