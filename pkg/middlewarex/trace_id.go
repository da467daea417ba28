package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"similar_groups/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"
	maxTraceIDLen     = 64
)

// TraceID берёт X-Trace-Id клиента, если он выглядит корректно, иначе
// генерирует новый. Идентификатор возвращается в ответе и попадает в supportId
// тела ошибки.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if !validTraceID(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLen {
		return false
	}

	for _, c := range []byte(traceID) {
		if c <= ' ' || c > '~' {
			return false
		}
	}

	return true
}
