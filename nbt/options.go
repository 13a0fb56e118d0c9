package nbt

import "github.com/anvilcodec/anvil/internal/options"

// config holds the tunables shared by Encoder and Decoder.
type config struct {
	bufferSize int
	strict     bool
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{bufferSize: 0, strict: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Option configures an Encoder or Decoder.
type Option = options.Option[*config]

// WithBufferSize sets the initial capacity of an Encoder's internal buffer.
// Zero (the default) uses the package's pooled buffer default size.
func WithBufferSize(n int) Option {
	return options.NoError[*config](func(c *config) { c.bufferSize = n })
}

// WithStrict controls whether a Decoder treats invalid UTF-8 in a name or
// TAG_String payload as fatal (the default, true) or accepts it verbatim
// (false).
func WithStrict(strict bool) Option {
	return options.NoError[*config](func(c *config) { c.strict = strict })
}
