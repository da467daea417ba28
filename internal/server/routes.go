package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"similar_groups/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/similar-groups", func(r chi.Router) {
				r.Post("/search", handler(s.postV1Search))
			})
		})

		// Путь, которым пользовался первый клиент на формах.
		r.Post("/search", handler(s.postV1Search))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
