package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	auth    *mock.MockAuthService
	session *mock.MockSessionService
	notes   *mock.MockNotesService
}

func newTestController(t *testing.T) (*Controller, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		session: mock.NewMockSessionService(ctrl),
		notes:   mock.NewMockNotesService(ctrl),
	}
	c := New(&service.ClientServices{
		AuthService:    m.auth,
		SessionService: m.session,
		NotesService:   m.notes,
	}, "en", logger.Nop())

	return c, m
}

func sessionExpired() error {
	return fmt.Errorf("%w: %w", service.ErrSessionExpired, adapter.NewResponseError(http.StatusUnauthorized, ""))
}

func TestExecute(t *testing.T) {
	creds := models.Credentials{Username: "alice", Password: "pw"}
	input := models.NoteInput{Title: "T", Content: "C"}
	notes := []models.Note{{ID: "1", Title: "T"}}

	tests := []struct {
		name   string
		effect flow.Effect
		setup  func(m testMocks)
		want   flow.Event
	}{
		{
			name:   "store token",
			effect: flow.StoreToken{Token: "tok"},
			setup:  func(m testMocks) { m.session.EXPECT().Save(gomock.Any(), "tok").Return(nil) },
			want:   flow.SessionStored{},
		},
		{
			name:   "store token fails",
			effect: flow.StoreToken{Token: "tok"},
			setup:  func(m testMocks) { m.session.EXPECT().Save(gomock.Any(), "tok").Return(errors.New("disk full")) },
			want:   flow.SessionStoreFailed{},
		},
		{
			name:   "clear token ignores store errors",
			effect: flow.ClearToken{},
			setup:  func(m testMocks) { m.session.EXPECT().Clear(gomock.Any()).Return(errors.New("locked")) },
			want:   nil,
		},
		{
			name:   "navigate reads the session",
			effect: flow.Navigate{Page: flow.PageNotes},
			setup:  func(m testMocks) { m.session.EXPECT().Restore(gomock.Any()).Return(true, nil) },
			want:   flow.Boot{Page: flow.PageNotes, HasToken: true},
		},
		{
			name:   "navigate with unreadable session",
			effect: flow.Navigate{Page: flow.PageNotes},
			setup:  func(m testMocks) { m.session.EXPECT().Restore(gomock.Any()).Return(false, errors.New("corrupt")) },
			want:   flow.Boot{Page: flow.PageNotes, HasToken: false},
		},
		{
			name:   "login",
			effect: flow.RequestLogin{Credentials: creds},
			setup:  func(m testMocks) { m.auth.EXPECT().Login(gomock.Any(), creds).Return("tok", nil) },
			want:   flow.LoginSucceeded{Token: "tok"},
		},
		{
			name:   "login rejected with server message",
			effect: flow.RequestLogin{Credentials: creds},
			setup: func(m testMocks) {
				m.auth.EXPECT().Login(gomock.Any(), creds).
					Return("", fmt.Errorf("%w: %w", service.ErrInvalidCredentials, adapter.NewResponseError(http.StatusUnauthorized, "Invalid credentials")))
			},
			want: flow.LoginFailed{Message: "Invalid credentials"},
		},
		{
			name:   "login without server message",
			effect: flow.RequestLogin{Credentials: creds},
			setup:  func(m testMocks) { m.auth.EXPECT().Login(gomock.Any(), creds).Return("", errors.New("decode")) },
			want:   flow.LoginFailed{},
		},
		{
			name:   "register",
			effect: flow.RequestRegister{Credentials: creds},
			setup:  func(m testMocks) { m.auth.EXPECT().Register(gomock.Any(), creds).Return(nil) },
			want:   flow.RegisterSucceeded{Username: "alice"},
		},
		{
			name:   "register conflict",
			effect: flow.RequestRegister{Credentials: creds},
			setup: func(m testMocks) {
				m.auth.EXPECT().Register(gomock.Any(), creds).
					Return(fmt.Errorf("%w: %w", service.ErrUserAlreadyExists, adapter.NewResponseError(http.StatusConflict, "User already exists")))
			},
			want: flow.RegisterFailed{Message: "User already exists"},
		},
		{
			name:   "load notes",
			effect: flow.LoadNotes{Session: 3},
			setup:  func(m testMocks) { m.notes.EXPECT().List(gomock.Any()).Return(notes, nil) },
			want:   flow.NotesLoaded{Session: 3, Notes: notes},
		},
		{
			name:   "load notes unauthorized",
			effect: flow.LoadNotes{Session: 3},
			setup:  func(m testMocks) { m.notes.EXPECT().List(gomock.Any()).Return(nil, sessionExpired()) },
			want:   flow.Unauthorized{Session: 3},
		},
		{
			name:   "load notes fails",
			effect: flow.LoadNotes{Session: 3},
			setup:  func(m testMocks) { m.notes.EXPECT().List(gomock.Any()).Return(nil, service.ErrServerUnavailable) },
			want:   flow.NotesLoadFailed{Session: 3},
		},
		{
			name:   "create note",
			effect: flow.CreateNote{Session: 3, Input: input},
			setup:  func(m testMocks) { m.notes.EXPECT().Create(gomock.Any(), input).Return(models.Note{ID: "1"}, nil) },
			want:   flow.SaveSucceeded{Session: 3},
		},
		{
			name:   "update note unauthorized",
			effect: flow.UpdateNote{Session: 3, ID: "1", Input: input},
			setup: func(m testMocks) {
				m.notes.EXPECT().Update(gomock.Any(), "1", input).Return(models.Note{}, sessionExpired())
			},
			want: flow.Unauthorized{Session: 3},
		},
		{
			name:   "update note fails",
			effect: flow.UpdateNote{Session: 3, ID: "1", Input: input},
			setup: func(m testMocks) {
				m.notes.EXPECT().Update(gomock.Any(), "1", input).Return(models.Note{}, service.ErrNoteNotFound)
			},
			want: flow.SaveFailed{Session: 3},
		},
		{
			name:   "delete note",
			effect: flow.DeleteNote{Session: 3, ID: "1"},
			setup:  func(m testMocks) { m.notes.EXPECT().Delete(gomock.Any(), "1").Return(nil) },
			want:   flow.DeleteSucceeded{Session: 3},
		},
		{
			name:   "delete note fails",
			effect: flow.DeleteNote{Session: 3, ID: "1"},
			setup:  func(m testMocks) { m.notes.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("boom")) },
			want:   flow.DeleteFailed{Session: 3},
		},
		{
			name:   "focus title is a view concern",
			effect: flow.FocusTitle{},
			setup:  func(testMocks) {},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := newTestController(t)
			tt.setup(m)

			got := c.Execute(context.Background(), tt.effect)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDispatch_LoginFlow(t *testing.T) {
	c, m := newTestController(t)
	ctx := context.Background()
	notes := []models.Note{{ID: "1", Title: "first"}}

	gomock.InOrder(
		m.auth.EXPECT().Login(ctx, models.Credentials{Username: "alice", Password: "pw"}).Return("tok", nil),
		m.session.EXPECT().Save(ctx, "tok").Return(nil),
		m.session.EXPECT().Restore(ctx).Return(true, nil),
		m.notes.EXPECT().List(ctx).Return(notes, nil),
	)

	c.Dispatch(ctx, flow.LoginSubmitted{Username: " alice ", Password: "pw"})

	s := c.State()
	assert.Equal(t, flow.PageNotes, s.Page)
	assert.False(t, s.Loading)
	require.Len(t, s.Visible, 1)
	assert.Equal(t, "first", s.Visible[0].Note.Title)
}

func TestDispatch_SessionStoreFailureStaysOnAuth(t *testing.T) {
	c, m := newTestController(t)
	ctx := context.Background()

	m.auth.EXPECT().Login(ctx, gomock.Any()).Return("tok", nil)
	m.session.EXPECT().Save(ctx, "tok").Return(errors.New("read-only"))

	c.Dispatch(ctx, flow.LoginSubmitted{Username: "alice", Password: "pw"})

	s := c.State()
	assert.Equal(t, flow.PageAuth, s.Page)
	assert.False(t, s.Submitting)
	assert.NotEmpty(t, s.LoginError)
}

func TestDispatch_UnauthorizedLogsOutOnce(t *testing.T) {
	c, m := newTestController(t)
	ctx := context.Background()

	m.session.EXPECT().Restore(ctx).Return(true, nil)
	m.notes.EXPECT().List(ctx).Return(nil, nil)
	c.Dispatch(ctx, c.Load(ctx, flow.PageNotes))
	require.Equal(t, flow.PageNotes, c.State().Page)

	gomock.InOrder(
		m.session.EXPECT().Clear(ctx).Return(nil),
		m.session.EXPECT().Restore(ctx).Return(false, nil),
	)
	session := c.State().Session
	c.Dispatch(ctx, flow.Unauthorized{Session: session})
	assert.Equal(t, flow.PageAuth, c.State().Page)

	// a second late 401 is ignored once the page changed
	c.Dispatch(ctx, flow.Unauthorized{Session: session})
	assert.Equal(t, flow.PageAuth, c.State().Page)
}

func TestDispatch_StaleAnswerAfterRelogin(t *testing.T) {
	c, m := newTestController(t)
	ctx := context.Background()

	m.session.EXPECT().Restore(ctx).Return(true, nil)
	m.notes.EXPECT().List(ctx).Return([]models.Note{{ID: "a1", Title: "alice"}}, nil)
	c.Dispatch(ctx, c.Load(ctx, flow.PageNotes))
	aliceSession := c.State().Session

	// a reload is issued, then the user logs out and bob signs in
	effects := c.Apply(flow.SaveSucceeded{Session: aliceSession})
	require.Equal(t, []flow.Effect{flow.LoadNotes{Session: aliceSession}}, effects)

	gomock.InOrder(
		m.session.EXPECT().Clear(ctx).Return(nil),
		m.session.EXPECT().Restore(ctx).Return(false, nil),
		m.auth.EXPECT().Login(ctx, gomock.Any()).Return("bob-token", nil),
		m.session.EXPECT().Save(ctx, "bob-token").Return(nil),
		m.session.EXPECT().Restore(ctx).Return(true, nil),
		m.notes.EXPECT().List(ctx).Return([]models.Note{{ID: "b1", Title: "bob"}}, nil),
	)
	c.Dispatch(ctx, flow.LogoutRequested{})
	c.Dispatch(ctx, flow.LoginSubmitted{Username: "bob", Password: "pw"})
	require.Equal(t, flow.PageNotes, c.State().Page)

	// alice's reload answers late
	m.notes.EXPECT().List(ctx).Return([]models.Note{{ID: "a1", Title: "alice"}}, nil)
	c.Dispatch(ctx, c.Execute(ctx, effects[0]))

	s := c.State()
	require.Len(t, s.Visible, 1)
	assert.Equal(t, "bob", s.Visible[0].Note.Title)
}

func TestLoad(t *testing.T) {
	c, m := newTestController(t)

	m.session.EXPECT().Restore(gomock.Any()).Return(false, nil)

	assert.Equal(t, flow.Boot{Page: flow.PageAuth}, c.Load(context.Background(), flow.PageAuth))
}
