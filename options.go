package tacozip

// Default buffer sizes. The output buffer amortizes syscall overhead
// across the whole write session; the copy buffer bounds how much of a
// source file is held in memory at once while its CRC-32 is computed.
const (
	defaultOutputBufferSize = 4 << 20 // 4 MiB
	defaultCopyBufferSize   = 1 << 20 // 1 MiB
)

// config holds the build-time switches from spec.md section 6. None of
// them change the wire format except utf8, which sets bit 11 of the
// general-purpose flags in every entry's local file header and central
// directory file header. The ghost's flags stay zero either way.
type config struct {
	utf8             bool
	outputBufferSize int
	copyBufferSize   int
}

func defaultConfig() config {
	return config{
		outputBufferSize: defaultOutputBufferSize,
		copyBufferSize:   defaultCopyBufferSize,
	}
}

// Option configures a Create call. A Create call with no options uses
// the defaults: UTF-8 flag off, a 4 MiB output buffer and a 1 MiB copy
// buffer.
type Option func(*config)

// WithUTF8 sets general-purpose bit 11 on every entry this call writes,
// asserting that archive names are UTF-8. tacozip never inspects or
// normalizes names itself; the caller is responsible for the assertion
// being true.
func WithUTF8(utf8 bool) Option {
	return func(c *config) { c.utf8 = utf8 }
}

// WithOutputBufferSize overrides the buffered-writer size attached to
// the output handle for the duration of a Create call. Sizes below 4
// KiB are raised to 4 KiB.
func WithOutputBufferSize(bytes int) Option {
	return func(c *config) {
		if bytes < 4096 {
			bytes = 4096
		}
		c.outputBufferSize = bytes
	}
}

// WithCopyBufferSize overrides the chunk size used to stream each
// source file's bytes while its CRC-32 is computed. Sizes below 4 KiB
// are raised to 4 KiB.
func WithCopyBufferSize(bytes int) Option {
	return func(c *config) {
		if bytes < 4096 {
			bytes = 4096
		}
		c.copyBufferSize = bytes
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
