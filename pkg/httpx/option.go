package httpx

import "similar_groups/pkg/logx"

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen обрезает логируемые дампы, 0 оставляет их целиком.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker logx.SensitiveDataMaskerInterface) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}
