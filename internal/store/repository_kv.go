package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type kvRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKVRepository returns a [KeyValueStore] backed by the client_kv table
// of db. db must already be migrated.
func NewKVRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &kvRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertValueQuery(key, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "kvRepository.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) Close() error {
	return r.DB.Close()
}
