// SPDX-License-Identifier: MIT

package equation

import "go.uber.org/zap"

// Option configures a System at construction time.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger attaches a logger for debug traces of construction and
// resolution. A nil logger selects the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(user ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
