package hospital

import (
	"database/sql"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the database named by databaseURL. Two backends are
// supported: a regular postgres DSN, or "sqlite://<path>" for
// single-file deployments. The repository itself is backend-agnostic:
// both drivers accept $N placeholders and RETURNING.
func Open(databaseURL string) (*sql.DB, error) {
	if path, ok := strings.CutPrefix(databaseURL, "sqlite://"); ok {
		return sql.Open("sqlite", path)
	}
	return sql.Open("postgres", databaseURL)
}

// MigrationsURL returns the migration source matching the backend of
// databaseURL, in golang-migrate file:// form.
func MigrationsURL(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "sqlite://") {
		return "file://migrations/sqlite"
	}
	return "file://migrations/postgres"
}
