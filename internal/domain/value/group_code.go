package value

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var ErrInvalidGroupCode = errors.New("invalid similar group code")

// Две цифры, заглавная буква, две цифры, например 09A01.
var groupCodePattern = regexp.MustCompile(`^[0-9]{2}[A-Z][0-9]{2}$`) //nolint:gochecknoglobals

type GroupCode string

func (c GroupCode) String() string {
	return string(c)
}

func ParseGroupCode(token string) (GroupCode, error) {
	if !groupCodePattern.MatchString(token) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGroupCode, token)
	}

	return GroupCode(token), nil
}

// ParseGroupCodes проверяет весь набор целиком. Первый некорректный токен
// прерывает разбор, и ничего не возвращается.
func ParseGroupCodes(tokens []string) ([]GroupCode, error) {
	codes := make([]GroupCode, 0, len(tokens))

	for _, token := range tokens {
		code, err := ParseGroupCode(token)
		if err != nil {
			return nil, err
		}

		codes = append(codes, code)
	}

	return codes, nil
}

// NormalizeInput разбивает исходный текст запроса на токены-кандидаты: схлопывает
// пробельные символы и приводит к верхнему регистру. Полноширинные символы
// намеренно сводятся к ASCII через NFKC, так что ０９Ａ０１ ищется как 09A01.
func NormalizeInput(raw string) []string {
	return strings.Fields(strings.ToUpper(norm.NFKC.String(raw)))
}

// ParseRelatedCodes разбивает список через пробел в том виде, в каком он
// хранится в справочнике.
func ParseRelatedCodes(raw string) ([]GroupCode, error) {
	tokens := strings.Fields(strings.ToUpper(raw))
	if len(tokens) == 0 {
		return nil, nil
	}

	return ParseGroupCodes(tokens)
}

func JoinGroupCodes(codes []GroupCode) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = code.String()
	}

	return strings.Join(parts, " ")
}
