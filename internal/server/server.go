package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"similar_groups/pkg/logx"
	"similar_groups/pkg/middlewarex"
)

// Server объединяет HTTP сервера отдельных сущностей. Сейчас он один, LookupServer.
type Server struct {
	LookupServer
}

func NewServer(
	lookupServer LookupServer,
) Server {
	return Server{
		LookupServer: lookupServer,
	}
}

// Handler собирает роутер со стандартной цепочкой middleware.
func (s Server) Handler(sensitiveDataMasker logx.SensitiveDataMaskerInterface, logFieldMaxLen int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
