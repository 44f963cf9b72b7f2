package dstruct

import (
	"log/slog"

	"github.com/viant/dstruct/cast"
	"github.com/viant/dstruct/internal/logging"
	"github.com/viant/tagly/format/text"
)

type (
	options struct {
		castOptions []cast.Option
		caseFormat  text.CaseFormat
		logger      *slog.Logger
	}

	// Option represents type option
	Option func(o *options)
)

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logging.NewNop()
	}
	return ret
}

func (o *options) casters() *cast.Set {
	return cast.NewSet(o.castOptions...)
}

// WithDateLayouts returns an option adding Go time layouts used by date attributes
func WithDateLayouts(layouts ...string) Option {
	return func(o *options) {
		o.castOptions = append(o.castOptions, cast.WithDateLayouts(layouts...))
	}
}

// WithDateFormat returns an option adding ISO date formats (i.e. DD/MM/YYYY) used by date attributes
func WithDateFormat(formats ...string) Option {
	return func(o *options) {
		o.castOptions = append(o.castOptions, cast.WithDateFormat(formats...))
	}
}

// WithCaseFormat returns an option controlling attribute names derived from Go struct fields
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(o *options) {
		o.caseFormat = caseFormat
	}
}

// WithLogger returns an option with a logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
