package controller

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/apitest"
	"github.com/MKhiriev/go-notes-keeper/internal/apitest/testserver"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stack struct {
	api      *apitest.API
	storages *store.ClientStorages
	services *service.ClientServices
}

// newStack wires the real adapter, services and a store of the given
// driver against an in-process notes API.
func newStack(t *testing.T, driver string) stack {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()
	dir := t.TempDir()

	api, srv := testserver.New(t, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		Driver: driver,
		DB:     config.ClientDB{DSN: filepath.Join(dir, "client.db")},
		File:   config.ClientFile{Path: filepath.Join(dir, "session.json")},
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return stack{
		api:      api,
		storages: storages,
		services: service.NewClientServices(storages, serverAdapter, log),
	}
}

func (s stack) controller(t *testing.T, page flow.Page) *Controller {
	t.Helper()
	ctx := context.Background()

	c := New(s.services, "en", logger.Nop())
	c.Dispatch(ctx, c.Load(ctx, page))
	return c
}

func signIn(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()

	c.Dispatch(ctx, flow.TabSelected{Tab: flow.TabRegister})
	c.Dispatch(ctx, flow.RegisterSubmitted{Username: "alice", Password: "pw", Confirm: "pw"})
	require.Empty(t, c.State().RegisterError)
	require.Equal(t, flow.TabLogin, c.State().Tab)
	require.Equal(t, "alice", c.State().LoginUsername)

	c.Dispatch(ctx, flow.LoginSubmitted{Username: "alice", Password: "pw"})
	require.Empty(t, c.State().LoginError)
	require.Equal(t, flow.PageNotes, c.State().Page)
}

func TestEndToEnd_CreateNote(t *testing.T) {
	for _, driver := range []string{store.DriverSQLite, store.DriverFile} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			s := newStack(t, driver)

			c := s.controller(t, flow.PageNotes)
			require.Equal(t, flow.PageAuth, c.State().Page, "logged-out notes page redirects")

			signIn(t, c)
			assert.Empty(t, c.State().Visible)

			c.Dispatch(ctx, flow.NewNoteRequested{})
			c.Dispatch(ctx, flow.SaveRequested{Title: "T", Content: "C"})

			st := c.State()
			assert.Empty(t, st.Alert)
			assert.Equal(t, flow.PanelList, st.Panel)
			require.Len(t, st.Visible, 1)
			assert.Equal(t, "T", st.Visible[0].Note.Title)
			assert.Equal(t, "C", st.Visible[0].Note.Content)
			assert.NotEmpty(t, st.Visible[0].Date)
		})
	}
}

func TestEndToEnd_EditFilterDelete(t *testing.T) {
	ctx := context.Background()
	s := newStack(t, store.DriverSQLite)
	c := s.controller(t, flow.PageAuth)
	signIn(t, c)

	for _, title := range []string{"Groceries", "Work plan"} {
		c.Dispatch(ctx, flow.NewNoteRequested{})
		c.Dispatch(ctx, flow.SaveRequested{Title: title, Content: "body"})
	}
	require.Len(t, c.State().Visible, 2)

	c.Dispatch(ctx, flow.FilterChanged{Term: "work"})
	require.Len(t, c.State().Visible, 1)
	note := c.State().Visible[0].Note

	c.Dispatch(ctx, flow.NoteOpened{Note: note})
	c.Dispatch(ctx, flow.SaveRequested{Title: "Work plan v2", Content: "updated"})
	require.Len(t, c.State().Visible, 1)
	assert.Equal(t, "Work plan v2", c.State().Visible[0].Note.Title)

	c.Dispatch(ctx, flow.NoteOpened{Note: c.State().Visible[0].Note})
	c.Dispatch(ctx, flow.DeleteRequested{})
	c.Dispatch(ctx, flow.DeleteConfirmed{Accepted: true})

	assert.Empty(t, c.State().Visible)
	assert.Len(t, s.api.Notes("alice"), 1)
}

func TestEndToEnd_SessionSurvivesRestart(t *testing.T) {
	s := newStack(t, store.DriverSQLite)
	signIn(t, s.controller(t, flow.PageAuth))

	c := s.controller(t, flow.PageAuth)
	assert.Equal(t, flow.PageNotes, c.State().Page, "logged-in auth page redirects")
}

func TestEndToEnd_ExpiredSessionLogsOut(t *testing.T) {
	ctx := context.Background()
	s := newStack(t, store.DriverSQLite)
	c := s.controller(t, flow.PageAuth)
	signIn(t, c)

	s.api.RevokeTokens()

	c.Dispatch(ctx, flow.NewNoteRequested{})
	c.Dispatch(ctx, flow.SaveRequested{Title: "T", Content: "C"})

	assert.Equal(t, flow.PageAuth, c.State().Page)
	_, err := s.storages.Session.Get(ctx, store.TokenKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
	assert.Empty(t, s.api.Notes("alice"))
}

func TestEndToEnd_LoginErrorsShowServerMessage(t *testing.T) {
	ctx := context.Background()
	s := newStack(t, store.DriverFile)
	c := s.controller(t, flow.PageAuth)

	c.Dispatch(ctx, flow.LoginSubmitted{Username: "ghost", Password: "pw"})
	assert.Equal(t, "Invalid credentials", c.State().LoginError)

	c.Dispatch(ctx, flow.TabSelected{Tab: flow.TabRegister})
	c.Dispatch(ctx, flow.RegisterSubmitted{Username: "bob", Password: "pw", Confirm: "pw"})
	c.Dispatch(ctx, flow.TabSelected{Tab: flow.TabRegister})
	c.Dispatch(ctx, flow.RegisterSubmitted{Username: "bob", Password: "pw", Confirm: "pw"})
	assert.Equal(t, "User already exists", c.State().RegisterError)
}
