package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotesSvc(t *testing.T, ctrl *gomock.Controller) (NotesService, *mock.MockServerAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewNotesService(mockAdapter, logger.Nop()), mockAdapter
}

func TestNotesService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	want := []models.Note{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}
	mockAdapter.EXPECT().ListNotes(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotesService_List_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	mockAdapter.EXPECT().ListNotes(gomock.Any()).
		Return(nil, adapter.NewResponseError(http.StatusUnauthorized, "token expired"))

	got, err := svc.List(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestNotesService_Create_TrimsInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	mockAdapter.EXPECT().
		CreateNote(gomock.Any(), models.NoteInput{Title: "T", Content: "C"}).
		Return(models.Note{ID: "n1", Title: "T", Content: "C"}, nil)

	note, err := svc.Create(context.Background(), models.NoteInput{Title: " T ", Content: "\nC\n"})
	require.NoError(t, err)
	assert.Equal(t, "n1", note.ID)
}

func TestNotesService_Create_TitleRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestNotesSvc(t, ctrl)

	_, err := svc.Create(context.Background(), models.NoteInput{Title: "   ", Content: "body"})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestNotesService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	mockAdapter.EXPECT().
		UpdateNote(gomock.Any(), "n1", models.NoteInput{Title: "T2", Content: ""}).
		Return(models.Note{ID: "n1", Title: "T2"}, nil)

	note, err := svc.Update(context.Background(), "n1", models.NoteInput{Title: "T2"})
	require.NoError(t, err)
	assert.Equal(t, "T2", note.Title)
}

func TestNotesService_Update_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	_, err := svc.Update(context.Background(), " ", models.NoteInput{Title: "T"})
	assert.ErrorIs(t, err, ErrNoteIDRequired)

	mockAdapter.EXPECT().UpdateNote(gomock.Any(), "gone", gomock.Any()).
		Return(models.Note{}, adapter.NewResponseError(http.StatusNotFound, "Note not found"))

	_, err = svc.Update(context.Background(), "gone", models.NoteInput{Title: "T"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.Equal(t, "Note not found", UserMessage(err))
}

func TestNotesService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	mockAdapter.EXPECT().DeleteNote(gomock.Any(), "n1").Return(nil)
	require.NoError(t, svc.Delete(context.Background(), "n1"))

	assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrNoteIDRequired)
}

func TestNotesService_Delete_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestNotesSvc(t, ctrl)

	mockAdapter.EXPECT().DeleteNote(gomock.Any(), "n1").
		Return(adapter.NewResponseError(http.StatusUnauthorized, ""))

	assert.ErrorIs(t, svc.Delete(context.Background(), "n1"), ErrSessionExpired)
}
