package hilbert

type options struct {
	width  Width
	logger *Logger
}

// Option configures a curve descriptor.
type Option func(*options)

// WithIndexWidth declares the numeric type of the index. Construction fails
// when the curve needs more bits than w holds.
//
// If omitted, the narrowest width holding every index bit is used
// (Uint64 for Simple2D, whose index grows with its inputs).
func WithIndexWidth(w Width) Option {
	return func(o *options) {
		o.width = w
	}
}

// WithLogger configures the logger used for construction and rejection
// events. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
