package tui

import "github.com/MKhiriev/go-notes-keeper/internal/flow"

// eventsMsg carries the outcomes of one batch of effects, in order.
type eventsMsg []flow.Event

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
