package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var defaultSensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	jsonFieldPattern("[Pp]assword"),
	jsonFieldPattern("accessToken"),
	jsonFieldPattern("refreshToken"),
	jsonFieldPattern("api_?[Kk]ey"),
}

func jsonFieldPattern(field string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)("` + field + `":\s?").+?(")`)
}

// SensitiveDataMasker заменяет значения известных секретных полей в логируемых
// данных на [MASKED]. Дополнительные строковые JSON поля задаются по имени.
type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

func NewSensitiveDataMasker(fields ...string) SensitiveDataMasker {
	patterns := make([]*regexp.Regexp, 0, len(defaultSensitiveDataPatterns)+len(fields))
	patterns = append(patterns, defaultSensitiveDataPatterns...)

	for _, field := range fields {
		if field == "" {
			continue
		}

		patterns = append(patterns, jsonFieldPattern(regexp.QuoteMeta(field)))
	}

	return SensitiveDataMasker{
		patterns: patterns,
	}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
