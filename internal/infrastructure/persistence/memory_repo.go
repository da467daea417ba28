package persistence

import (
	"context"
	"slices"
	"sync"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
)

// MemoryRepository хранит справочник в памяти процесса. Используется, когда
// база данных не настроена.
type MemoryRepository struct {
	mu     sync.RWMutex
	byCode map[value.GroupCode][]entity.SimilarGroup
	keys   map[entity.SimilarGroupKey]struct{}
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byCode: make(map[value.GroupCode][]entity.SimilarGroup),
		keys:   make(map[entity.SimilarGroupKey]struct{}),
	}
}

func (r *MemoryRepository) Insert(_ context.Context, groups []entity.SimilarGroup) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := 0

	for _, g := range groups {
		if _, ok := r.keys[g.Key()]; ok {
			continue
		}

		g.RelatedCodes = slices.Clone(g.RelatedCodes)

		r.keys[g.Key()] = struct{}{}
		r.byCode[g.GroupCode] = append(r.byCode[g.GroupCode], g)
		inserted++
	}

	return inserted, nil
}

func (r *MemoryRepository) FindByCode(_ context.Context, code value.GroupCode) ([]entity.SimilarGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.byCode[code]), nil
}

func (r *MemoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.keys), nil
}
