package optionvalues

import (
	"net/http"

	"go.uber.org/zap"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	LabelParam   string
	MaxBatch     int
	MaxBodyBytes int64
	Guard        GuardFunc
	Logger       *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    "/api/option-values",
		LabelParam:   "label",
		MaxBatch:     100,
		MaxBodyBytes: 64 << 10,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/option-values"
	}
	if opts.LabelParam == "" {
		opts.LabelParam = "label"
	}
	if opts.MaxBatch <= 0 {
		opts.MaxBatch = 100
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 << 10
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithLabelParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LabelParam = name
	}
}

func WithMaxBatch(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBatch = limit
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
