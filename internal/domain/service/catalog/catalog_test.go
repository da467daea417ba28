package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/service/catalog"
	"similar_groups/internal/infrastructure/persistence"
)

type staticSource struct {
	groups []entity.SimilarGroup
	err    error
}

func (s staticSource) Read(context.Context, string) ([]entity.SimilarGroup, error) {
	return s.groups, s.err
}

func TestImporterIsIdempotent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	source := staticSource{groups: []entity.SimilarGroup{
		{GroupCode: "09A01", Classification: "第9類", GeneralSimilar: true},
		{GroupCode: "09A01", Classification: "第9類", RemarkSimilar: true},
		{GroupCode: "09A01", Classification: "第10類", GeneralSimilar: true},
	}}
	repo := persistence.NewMemoryRepository()
	importer := catalog.NewImporter(source, repo)

	result, err := importer.Import(ctx, "similar_groups.csv")
	rq.NoError(err)
	rq.Equal(catalog.ImportResult{Rows: 3, Inserted: 2, Skipped: 1, Total: 2}, result)

	result, err = importer.Import(ctx, "similar_groups.csv")
	rq.NoError(err)
	rq.Equal(catalog.ImportResult{Rows: 3, Inserted: 0, Skipped: 3, Total: 2}, result)

	groups, err := repo.FindByCode(ctx, "09A01")
	rq.NoError(err)
	rq.Len(groups, 2)
	// Из повторяющейся пары остаётся первая строка.
	rq.True(groups[0].GeneralSimilar)
	rq.False(groups[0].RemarkSimilar)
}

func TestImporterSourceError(t *testing.T) {
	rq := require.New(t)

	errMissing := errors.New("missing file")

	_, err := catalog.NewImporter(staticSource{err: errMissing}, persistence.NewMemoryRepository()).
		Import(context.Background(), "missing.csv")
	rq.ErrorIs(err, errMissing)
}
