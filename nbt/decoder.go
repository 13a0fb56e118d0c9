package nbt

// Decoder decodes NBT documents under an explicit strict/lenient UTF-8
// policy. DecodeDocument is sufficient for the default (strict) behavior;
// Decoder exists for callers who need WithStrict(false).
type Decoder struct {
	state decodeState
}

// NewDecoder creates a Decoder. WithStrict(false) accepts invalid UTF-8 in
// names and string payloads instead of returning errs.ErrInvalidUTF8.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Decoder{state: decodeState{strict: cfg.strict}}, nil
}

// DecodeDocument decodes every top-level tag in data under this decoder's
// configured strictness.
func (d *Decoder) DecodeDocument(data []byte) ([]Tag, error) {
	return d.state.decodeDocument(data)
}
