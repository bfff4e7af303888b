// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Note is a single text note owned by the remote notes API.
//
// The client never creates IDs or timestamps itself: every field except
// Title and Content is assigned by the server and only cached locally for
// rendering.
type Note struct {
	// ID is the server-assigned identifier (a UUID string on the reference
	// server).
	ID string `json:"id"`

	// UserID is the owner of the note. Informational only.
	UserID string `json:"user_id,omitempty"`

	// Title is the required, non-empty note headline.
	Title string `json:"title"`

	// Content is the free-form note body. May be empty.
	Content string `json:"content"`

	// CreatedAt is the creation time reported by the server.
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is the last modification time reported by the server and is
	// the date shown next to every note in the list.
	UpdatedAt Timestamp `json:"updated_at"`
}

// NoteInput is the request body for creating or updating a note.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Timestamp is a time.Time that also accepts the zone-less layouts emitted by
// servers storing naive date-times. Zone-less values are interpreted as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON implements [json.Unmarshaler]. null and "" leave the zero time.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp format %q", raw)
}

// MarshalJSON implements [json.Marshaler] using RFC 3339 with nanoseconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
