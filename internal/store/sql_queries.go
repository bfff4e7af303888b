package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "client_kv"
	kvKeyColumn   = "key"
	kvValueColumn = "value"
	kvUpdatedAt   = "updated_at"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return sqlite.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildUpsertValueQuery replaces the row for key; SQLite resolves the
// primary key conflict with an update.
func buildUpsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sqlite.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
