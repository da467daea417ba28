package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"similar_groups/internal/domain/value"
)

func TestAnnotationPolicy(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		mode      value.AnnotationMode
		applies   []string
		rejects   []string
		formatted string
	}{
		{
			name:      "Default",
			text:      "",
			mode:      value.AnnotateAll,
			applies:   []string{"第9類", "備考"},
			formatted: "all",
		},
		{
			name:      "All upper case",
			text:      " ALL ",
			mode:      value.AnnotateAll,
			applies:   []string{"第35類"},
			formatted: "all",
		},
		{
			name:      "None",
			text:      "none",
			mode:      value.AnnotateNone,
			rejects:   []string{"第9類"},
			formatted: "none",
		},
		{
			name:      "Allowlist",
			text:      "第9類, 第35類,",
			mode:      value.AnnotateAllowlist,
			applies:   []string{"第9類", "第35類"},
			rejects:   []string{"第1類"},
			formatted: "第35類,第9類",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var policy value.AnnotationPolicy

			rq.NoError(policy.UnmarshalText([]byte(tc.text)))
			rq.Equal(tc.mode, policy.Mode)
			rq.Equal(tc.formatted, policy.String())

			for _, c := range tc.applies {
				rq.True(policy.Applies(c), c)
			}

			for _, c := range tc.rejects {
				rq.False(policy.Applies(c), c)
			}
		})
	}
}
