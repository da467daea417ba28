package middlewarex_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"similar_groups/pkg/contextx"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/logx"
	"similar_groups/pkg/middlewarex"
	"similar_groups/pkg/rest"
)

func chain(h http.Handler) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	return middlewarex.TraceID(
		middlewarex.Logger(
			middlewarex.Recovery(
				middlewarex.RequestLogging(masker, 1024)(
					middlewarex.ResponseLogging(masker, 1024)(h),
				),
			),
		),
	)
}

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{name: "Generated", incoming: "", reused: false},
		{name: "Propagated", incoming: "abc-123", reused: true},
		{name: "Too long", incoming: strings.Repeat("a", 65), reused: false},
		{name: "Control characters", incoming: "abc\tdef", reused: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var seen contextx.TraceID

			h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID

				w.WriteHeader(http.StatusNoContent)
			}))

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			r.Header.Set("X-Trace-Id", tc.incoming)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tc.reused {
				rq.Equal(tc.incoming, seen.String())
			} else {
				rq.NotEqual(tc.incoming, seen.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("lookup exploded")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"group_code":"09A01"}`)))

	rq.Equal(http.StatusInternalServerError, w.Code)

	var response rest.Error

	rq.NoError(jsoniter.NewDecoder(w.Body).Decode(&response))
	rq.Equal(rest.ErrorCode(errcodes.InternalServerError), response.Code)
	rq.Equal(w.Header().Get("X-Trace-Id"), response.SupportID)
}

func TestLoggingMasksAndTruncates(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), logx.NewLogger(&buf, 0))

	masker := logx.NewSensitiveDataMasker("group_code")
	h := middlewarex.RequestLogging(masker, 4096)(
		middlewarex.ResponseLogging(masker, 20)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"classification_details":[]}`))
		})),
	)

	r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/search", strings.NewReader(`{"group_code":"09A01"}`))
	r.Header.Set("Content-Type", "application/json")

	h.ServeHTTP(httptest.NewRecorder(), r)

	out := buf.String()

	rq.Contains(out, "[MASKED]")
	rq.NotContains(out, "09A01")
	rq.NotContains(out, `"classification_details":[]}`)
}
