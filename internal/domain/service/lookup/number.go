package lookup

import (
	"cmp"
	"regexp"
	"strings"
)

var digitsPattern = regexp.MustCompile(`[0-9]+`) //nolint:gochecknoglobals

// leadingNumber возвращает первую последовательность цифр метки без ведущих
// нулей. Число остаётся строкой, чтобы сравнивались цифры любой длины.
func leadingNumber(label string) (string, bool) {
	digits := digitsPattern.FindString(label)
	if digits == "" {
		return "", false
	}

	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0", true
	}

	return trimmed, true
}

// compareNumbers сравнивает по значению десятичные строки без ведущих нулей.
func compareNumbers(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}
