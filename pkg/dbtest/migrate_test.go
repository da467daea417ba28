package dbtest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"similar_groups/pkg/dbtest"
)

func TestNewSQLite(t *testing.T) {
	rq := require.New(t)

	migration := filepath.Join(t.TempDir(), "001.sql")
	rq.NoError(os.WriteFile(migration, []byte(`CREATE TABLE t (id INTEGER PRIMARY KEY); INSERT INTO t (id) VALUES (1);`), 0o600))

	db := dbtest.NewSQLite(t, migration)

	var count int
	rq.NoError(db.GetContext(context.Background(), &count, `SELECT COUNT(*) FROM t`))
	rq.Equal(1, count)
}

func TestMigrateFromFileMissing(t *testing.T) {
	db := dbtest.NewSQLite(t)

	err := dbtest.MigrateFromFile(context.Background(), db, filepath.Join(t.TempDir(), "missing.sql"))
	require.Error(t, err)
}
