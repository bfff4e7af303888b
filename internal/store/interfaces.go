// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state between runs of the notes client.
//
// The only persisted value is the session token, kept under [TokenKey] in a
// small key-value table. Two backends implement [KeyValueStore]: an SQLite
// database migrated with goose (the default) and a JSON file for setups
// without cgo.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenKey is the key the session token is stored under.
const TokenKey = "authToken"

// KeyValueStore is a durable string map.
type KeyValueStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}
