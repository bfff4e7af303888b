package flow

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// FilterNotes returns the notes whose title or content contains term,
// ignoring case. Order is preserved and notes is never modified. An empty
// term matches everything.
func FilterNotes(notes []models.Note, term string) []models.Note {
	needle := strings.ToLower(term)

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if needle == "" ||
			strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			out = append(out, n)
		}
	}

	return out
}
