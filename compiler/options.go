package compiler

type config struct {
	payloadLimit    int
	identifierCheck bool
}

// Option is an option for the compiler.
type Option func(*config)

// WithPayloadLimit rejects any message whose static size exceeds limit bytes.
// Targets with a fixed-size message buffer should set this to the buffer
// size. A zero value disables the check.
func WithPayloadLimit(limit int) Option {
	return func(c *config) {
		c.payloadLimit = limit
	}
}

// WithIdentifierCheck requires message and field names to be usable as
// identifiers in generated code.
func WithIdentifierCheck() Option {
	return func(c *config) {
		c.identifierCheck = true
	}
}

func newConfig(opts ...Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
