package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"similar_groups/internal/domain/entity"
	"similar_groups/pkg/logx"
)

type Source interface {
	Read(ctx context.Context, path string) ([]entity.SimilarGroup, error)
}

type SimilarGroupRepository interface {
	Insert(ctx context.Context, groups []entity.SimilarGroup) (int, error)
	Count(ctx context.Context) (int, error)
}

type ImportResult struct {
	Rows     int
	Inserted int
	Skipped  int
	Total    int
}

// Importer загружает справочник в хранилище. Строки, пара (код группы, класс)
// которых уже есть в хранилище или выше в том же файле, пропускаются.
// Повторный импорт того же файла ничего не меняет.
type Importer struct {
	source Source
	repo   SimilarGroupRepository
}

func NewImporter(source Source, repo SimilarGroupRepository) *Importer {
	return &Importer{
		source: source,
		repo:   repo,
	}
}

func (i *Importer) Import(ctx context.Context, path string) (ImportResult, error) {
	logger(ctx).Info("reference import started", slog.String(logx.FieldPath, path))

	groups, err := i.source.Read(ctx, path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("source.Read: %w", err)
	}

	unique := dedupe(groups)

	inserted, err := i.repo.Insert(ctx, unique)
	if err != nil {
		return ImportResult{}, fmt.Errorf("repo.Insert: %w", err)
	}

	total, err := i.repo.Count(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("repo.Count: %w", err)
	}

	result := ImportResult{
		Rows:     len(groups),
		Inserted: inserted,
		Skipped:  len(groups) - inserted,
		Total:    total,
	}

	logger(ctx).Info("reference import finished",
		slog.Int("rows", result.Rows),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("total", result.Total),
	)

	return result, nil
}

// dedupe оставляет первую строку для каждой пары (код группы, класс).
func dedupe(groups []entity.SimilarGroup) []entity.SimilarGroup {
	seen := make(map[entity.SimilarGroupKey]struct{}, len(groups))
	result := make([]entity.SimilarGroup, 0, len(groups))

	for _, g := range groups {
		if _, ok := seen[g.Key()]; ok {
			continue
		}

		seen[g.Key()] = struct{}{}
		result = append(result, g)
	}

	return result
}
