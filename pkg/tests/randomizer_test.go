package tests_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"similar_groups/pkg/tests"
)

func TestRandomizerGroupCode(t *testing.T) {
	rq := require.New(t)

	pattern := regexp.MustCompile(`^[0-9]{2}[A-Z][0-9]{2}$`)
	randomizer := tests.NewRandomizer()

	for range 200 {
		rq.Regexp(pattern, randomizer.GroupCode())
		rq.NotRegexp(pattern, randomizer.MalformedGroupCode())
	}
}
