package tests

import (
	"math/rand"
	"time"
)

const (
	digits  = "0123456789"
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Randomizer генерирует случайные коды групп сходства для тестов.
type Randomizer struct {
	random *rand.Rand
}

func NewRandomizer() Randomizer {
	return Randomizer{
		random: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // for tests
	}
}

// GroupCode возвращает корректный код вида "09A01".
func (r Randomizer) GroupCode() string {
	return string([]byte{r.pick(digits), r.pick(digits), r.pick(letters), r.pick(digits), r.pick(digits)})
}

// MalformedGroupCode возвращает код, в котором испорчена ровно одна позиция.
func (r Randomizer) MalformedGroupCode() string {
	code := []byte(r.GroupCode())

	switch pos := r.random.Intn(len(code) + 1); {
	case pos == len(code):
		return string(code[:len(code)-1])
	case pos == 2: //nolint:mnd // letter position
		code[pos] = r.pick(digits)
	default:
		code[pos] = r.pick(letters)
	}

	return string(code)
}

func (r Randomizer) Bool() bool {
	return r.random.Intn(2) == 0 //nolint:mnd // skip
}

func (r Randomizer) pick(alphabet string) byte {
	return alphabet[r.random.Intn(len(alphabet))]
}
