package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/internal/metrics"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/httpx/reply"
	"similar_groups/pkg/httpx/req"
	"similar_groups/pkg/rest"
)

type lookupService interface {
	Search(ctx context.Context, raw string) (entity.SearchResult, error)
}

type LookupServer struct {
	lookupService lookupService
}

func NewLookupServer(lookupService lookupService) LookupServer {
	return LookupServer{
		lookupService: lookupService,
	}
}

func (s LookupServer) postV1Search(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SearchRequest

	if err := req.Read(w, r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.lookupService.Search(ctx, *request.GroupCode)
	metrics.ObserveLookup(lookupOutcome(err), len(value.NormalizeInput(*request.GroupCode)))

	if err != nil {
		return fmt.Errorf("lookupService.Search: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSearchResponse(result))

	return nil
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case failure.Code(err) == errcodes.InvalidGroupCode:
		return metrics.OutcomeMalformedCode
	case failure.IsNotFoundError(err):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
