package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/logx"
)

type similarGroupFinder interface {
	FindByCode(ctx context.Context, code value.GroupCode) ([]entity.SimilarGroup, error)
}

// RecordCache общий кэш между кэшем процесса и хранилищем, например Redis.
type RecordCache interface {
	Get(ctx context.Context, code value.GroupCode) ([]entity.SimilarGroup, bool, error)
	Set(ctx context.Context, code value.GroupCode, groups []entity.SimilarGroup) error
}

// CachedRepository read-through кэш перед хранилищем справочника.
// Во время работы хранилище только читается, поэтому записи не инвалидируются,
// а только истекают. Промахи тоже кэшируются.
type CachedRepository struct {
	next   similarGroupFinder
	local  *cache.Cache
	remote RecordCache
}

func NewCachedRepository(next similarGroupFinder, ttl, cleanupInterval time.Duration) *CachedRepository {
	return &CachedRepository{
		next:  next,
		local: cache.New(ttl, cleanupInterval),
	}
}

func (r *CachedRepository) WithRemote(remote RecordCache) *CachedRepository {
	r.remote = remote
	return r
}

func (r *CachedRepository) FindByCode(ctx context.Context, code value.GroupCode) ([]entity.SimilarGroup, error) {
	if cached, found := r.local.Get(code.String()); found {
		return cached.([]entity.SimilarGroup), nil //nolint:forcetypeassert
	}

	if r.remote != nil {
		groups, found, err := r.remote.Get(ctx, code)
		if err != nil {
			logger(ctx).Warn("remote cache get failed", logx.Stringer(logx.FieldGroupCode, code), logx.Error(err))
		} else if found {
			r.local.SetDefault(code.String(), groups)
			return groups, nil
		}
	}

	groups, err := r.next.FindByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("next.FindByCode: %w", err)
	}

	r.local.SetDefault(code.String(), groups)

	if r.remote != nil {
		if err := r.remote.Set(ctx, code, groups); err != nil {
			logger(ctx).Warn("remote cache set failed", logx.Stringer(logx.FieldGroupCode, code), logx.Error(err))
		}
	}

	logger(ctx).Debug("similar groups cached", logx.Stringer(logx.FieldGroupCode, code), slog.Int("count", len(groups)))

	return groups, nil
}
