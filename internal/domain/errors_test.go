package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"similar_groups/internal/domain"
	"similar_groups/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("disk full")
	err := fmt.Errorf("repo.Insert: %w", domain.WrapError(cause, errcodes.InternalServerError, "failed to insert"))

	rq.ErrorIs(err, cause)
	rq.EqualError(err, "repo.Insert: failed to insert: disk full")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InternalServerError, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)

	rq.EqualError(domain.NewError(errcodes.InvalidReferenceData, "empty file"), "empty file")
}
