package region

import (
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/internal/options"
)

// config holds the tunables shared by Encoder and Decoder.
type config struct {
	bufferSize         int
	defaultCompression format.CompressionID
	strict             bool
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{bufferSize: 0, defaultCompression: format.CompressionZlib, strict: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures an Encoder or Decoder.
type Option = options.Option[*config]

// WithBufferSize records a chunk-data buffer size on the config. Region.Encode
// assembles chunk frames in the pooled chunk buffer and does not read this
// value.
func WithBufferSize(n int) Option {
	return options.NoError[*config](func(c *config) { c.bufferSize = n })
}

// WithDefaultCompression sets the compression algorithm Encoder.AddChunk
// uses when a cell doesn't specify its own. Defaults to
// format.CompressionZlib, the more common choice for chunk data.
func WithDefaultCompression(id format.CompressionID) Option {
	return options.NoError[*config](func(c *config) { c.defaultCompression = id })
}

// WithStrict controls whether Decoder rejects invalid UTF-8 inside a
// chunk's NBT document (the default, true) or accepts it verbatim (false).
func WithStrict(strict bool) Option {
	return options.NoError[*config](func(c *config) { c.strict = strict })
}
