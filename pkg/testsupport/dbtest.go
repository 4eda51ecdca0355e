package testsupport

import (
	"testing"

	"github.com/uptrace/bun"

	"github.com/goliatone/socialsync/internal/storage"
)

// NewBunDB opens an isolated in-memory SQLite database named after the test
// and migrates models into it. The database is closed on cleanup.
func NewBunDB(tb testing.TB, models ...any) *bun.DB {
	tb.Helper()
	db, err := storage.Open(storage.Config{
		Driver: "sqlite",
		DSN:    "file:" + sanitize(tb.Name()) + "?mode=memory&cache=shared",
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })
	if len(models) > 0 {
		if err := storage.Migrate(tb.Context(), db, models...); err != nil {
			tb.Fatalf("migrate: %v", err)
		}
	}
	return db
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
