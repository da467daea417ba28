package persistence

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"

	"similar_groups/internal/domain"
	"similar_groups/internal/domain/entity"
	"similar_groups/internal/domain/value"
	"similar_groups/pkg/errcodes"
	"similar_groups/pkg/lox"
)

//go:embed migrations/001_similar_groups.sql
var schemaSQL string

// SimilarGroupRepository хранит справочник в PostgreSQL или SQLite.
// Запросы пишутся с плейсхолдерами '?' и переписываются под драйвер.
type SimilarGroupRepository struct {
	db *sqlx.DB
}

func NewSimilarGroupRepository(db *sqlx.DB) *SimilarGroupRepository {
	return &SimilarGroupRepository{db: db}
}

func (r *SimilarGroupRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// Migrate создаёт таблицу similar_groups, если её ещё нет.
func (r *SimilarGroupRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to create similar_groups table")
	}

	return nil
}

// Insert сохраняет группы в одной транзакции. Строки с уже существующей парой
// (group_code, classification) не трогаются. Возвращает число записанных строк.
func (r *SimilarGroupRepository) Insert(ctx context.Context, groups []entity.SimilarGroup) (int, error) {
	if len(groups) == 0 {
		return 0, nil
	}

	inserted := 0

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO similar_groups (
				group_code, classification, general_similar, remark_similar, related_codes
			) VALUES (
				:group_code, :classification, :general_similar, :remark_similar, :related_codes
			)
			ON CONFLICT (group_code, classification) DO NOTHING`

		for i, schema := range lox.Map(groups, fromSimilarGroup) {
			res, err := tx.NamedExecContext(ctx, query, schema)
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed to insert similar group at index %d", i))
			}

			rows, err := res.RowsAffected()
			if err != nil {
				return domain.WrapError(err, errcodes.InternalServerError, "failed to check rows")
			}

			inserted += int(rows)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *SimilarGroupRepository) FindByCode(ctx context.Context, code value.GroupCode) ([]entity.SimilarGroup, error) {
	query := r.db.Rebind(`
		SELECT group_code, classification, general_similar, remark_similar, related_codes
		FROM similar_groups
		WHERE group_code = ?
		ORDER BY classification`)

	var schemas []similarGroupSchema
	if err := r.db.SelectContext(ctx, &schemas, query, code.String()); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to find similar groups")
	}

	groups, err := toDomainList(schemas)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "corrupted similar group row")
	}

	return groups, nil
}

func (r *SimilarGroupRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM similar_groups`); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count similar groups")
	}

	return count, nil
}
