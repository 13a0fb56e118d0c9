package compress

// ZstdCodec provides the Zstandard envelope codec, trading compression
// speed for the best ratio of the pluggable codecs.
//
// Two build-tagged implementations back this type: zstd_pure.go (the
// default, klauspost/compress/zstd) and zstd_cgo.go (valyala/gozstd,
// gated behind the nobuild tag and not compiled by this module).
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
