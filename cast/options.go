package cast

import (
	ftime "github.com/viant/tagly/format/time"
)

// Options contains caster configuration
type Options struct {
	// DateLayouts are Go time layouts tried before the built-in layouts
	DateLayouts []string
}

// Option represents a caster option
type Option func(o *Options)

// Apply applies options
func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithDateLayouts returns an option adding Go time layouts used by the Date caster
func WithDateLayouts(layouts ...string) Option {
	return func(o *Options) {
		for _, layout := range layouts {
			if layout == "" {
				continue
			}
			o.DateLayouts = append(o.DateLayouts, layout)
		}
	}
}

// WithDateFormat returns an option adding ISO date formats (i.e. YYYY-MM-DD) used by the Date caster
func WithDateFormat(formats ...string) Option {
	return func(o *Options) {
		for _, format := range formats {
			if format == "" {
				continue
			}
			o.DateLayouts = append(o.DateLayouts, ftime.DateFormatToTimeLayout(format))
		}
	}
}
