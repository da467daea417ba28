package connectors

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"similar_groups/pkg/logx"
)

const sqliteDriverName = "sqlite"

//nolint:gochecknoinits
func init() {
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// SQLite открывает файловую базу с одним соединением. SQLite всё равно
// сериализует запись, а файл в основном читается.
type SQLite struct {
	value *sqlx.DB
	Path  string
	init  sync.Once
}

func (s *SQLite) Client(ctx context.Context) *sqlx.DB {
	s.init.Do(func() {
		s.value = lo.Must(sqlx.ConnectContext(ctx, sqliteDriverName, s.Path+"?_pragma=busy_timeout(5000)"))

		s.value.SetMaxOpenConns(1)

		logger(ctx).Info("sqlite connected", slog.String(logx.FieldPath, s.Path))
	})

	return s.value
}

func (s *SQLite) Close(ctx context.Context) {
	if s.value == nil {
		return
	}

	if err := s.value.Close(); err != nil {
		logger(ctx).Error("sqliteClient.Close", logx.Error(err))
	}

	logger(ctx).Info("sqlite disconnected", slog.String(logx.FieldPath, s.Path))
}
