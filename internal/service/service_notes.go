package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewNotesService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) NotesService {
	return &notesService{adapter: serverAdapter, logger: logger}
}

func (n *notesService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := n.adapter.ListNotes(ctx)
	if err != nil {
		n.logger.Err(err).Str("func", "notesService.List").Msg("failed to list notes")
		return nil, mapAdapterError(err)
	}

	n.logger.Debug().Int("count", len(notes)).Msg("notes loaded")
	return notes, nil
}

func (n *notesService) Create(ctx context.Context, in models.NoteInput) (models.Note, error) {
	in, err := normalizeInput(in)
	if err != nil {
		return models.Note{}, err
	}

	note, err := n.adapter.CreateNote(ctx, in)
	if err != nil {
		n.logger.Err(err).Str("func", "notesService.Create").Msg("failed to create note")
		return models.Note{}, mapAdapterError(err)
	}

	n.logger.Debug().Str("note_id", note.ID).Msg("note created")
	return note, nil
}

func (n *notesService) Update(ctx context.Context, id string, in models.NoteInput) (models.Note, error) {
	if strings.TrimSpace(id) == "" {
		return models.Note{}, ErrNoteIDRequired
	}
	in, err := normalizeInput(in)
	if err != nil {
		return models.Note{}, err
	}

	note, err := n.adapter.UpdateNote(ctx, id, in)
	if err != nil {
		n.logger.Err(err).Str("func", "notesService.Update").Str("note_id", id).Msg("failed to update note")
		return models.Note{}, mapAdapterError(err)
	}

	n.logger.Debug().Str("note_id", id).Msg("note updated")
	return note, nil
}

func (n *notesService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNoteIDRequired
	}

	if err := n.adapter.DeleteNote(ctx, id); err != nil {
		n.logger.Err(err).Str("func", "notesService.Delete").Str("note_id", id).Msg("failed to delete note")
		return mapAdapterError(err)
	}

	n.logger.Debug().Str("note_id", id).Msg("note deleted")
	return nil
}

func normalizeInput(in models.NoteInput) (models.NoteInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" {
		return models.NoteInput{}, ErrTitleRequired
	}
	return in, nil
}
