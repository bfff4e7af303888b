// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller runs the [flow] state machine against the client
// services.
//
// A [Controller] owns the current [flow.State]. [Controller.Apply] folds an
// event into it; [Controller.Execute] performs one effect and returns the
// event describing its outcome. Execute never reads or writes the state, so
// the terminal UI runs it on background commands while Apply stays on the
// UI loop. [Controller.Dispatch] chains both synchronously.
package controller

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/flow"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

// Controller is not safe for concurrent use except for Execute.
type Controller struct {
	state flow.State

	auth    service.AuthService
	session service.SessionService
	notes   service.NotesService

	logger *logger.Logger
}

func New(services *service.ClientServices, locale string, logger *logger.Logger) *Controller {
	return &Controller{
		state:   flow.NewState(flow.PageAuth, locale),
		auth:    services.AuthService,
		session: services.SessionService,
		notes:   services.NotesService,
		logger:  logger,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() flow.State {
	return c.state
}

// Apply folds ev into the state and returns the effects to run, in order.
func (c *Controller) Apply(ev flow.Event) []flow.Effect {
	next, effects := flow.Transition(c.state, ev)
	if next.Page != c.state.Page {
		c.logger.Debug().
			Stringer("from", c.state.Page).
			Stringer("to", next.Page).
			Msg("page changed")
	}
	c.state = next
	return effects
}

// Load reads the session and returns the [flow.Boot] event for page.
func (c *Controller) Load(ctx context.Context, page flow.Page) flow.Event {
	hasToken, err := c.session.Restore(ctx)
	if err != nil {
		c.logger.Err(err).Msg("failed to restore session, continuing logged out")
	}
	return flow.Boot{Page: page, HasToken: hasToken}
}

// Execute performs eff and returns the resulting event, or nil when the
// effect has no outcome to report.
func (c *Controller) Execute(ctx context.Context, eff flow.Effect) flow.Event {
	switch eff := eff.(type) {
	case flow.StoreToken:
		if err := c.session.Save(ctx, eff.Token); err != nil {
			return flow.SessionStoreFailed{}
		}
		return flow.SessionStored{}

	case flow.ClearToken:
		if err := c.session.Clear(ctx); err != nil {
			c.logger.Err(err).Msg("session token was not removed from the store")
		}
		return nil

	case flow.Navigate:
		return c.Load(ctx, eff.Page)

	case flow.RequestLogin:
		token, err := c.auth.Login(ctx, eff.Credentials)
		if err != nil {
			return flow.LoginFailed{Message: service.UserMessage(err)}
		}
		return flow.LoginSucceeded{Token: token}

	case flow.RequestRegister:
		if err := c.auth.Register(ctx, eff.Credentials); err != nil {
			return flow.RegisterFailed{Message: service.UserMessage(err)}
		}
		return flow.RegisterSucceeded{Username: eff.Credentials.Username}

	case flow.LoadNotes:
		notes, err := c.notes.List(ctx)
		if err != nil {
			return failure(err, eff.Session, flow.NotesLoadFailed{Session: eff.Session})
		}
		return flow.NotesLoaded{Session: eff.Session, Notes: notes}

	case flow.CreateNote:
		_, err := c.notes.Create(ctx, eff.Input)
		return outcome(err, eff.Session, flow.SaveSucceeded{Session: eff.Session}, flow.SaveFailed{Session: eff.Session})

	case flow.UpdateNote:
		_, err := c.notes.Update(ctx, eff.ID, eff.Input)
		return outcome(err, eff.Session, flow.SaveSucceeded{Session: eff.Session}, flow.SaveFailed{Session: eff.Session})

	case flow.DeleteNote:
		err := c.notes.Delete(ctx, eff.ID)
		return outcome(err, eff.Session, flow.DeleteSucceeded{Session: eff.Session}, flow.DeleteFailed{Session: eff.Session})

	case flow.FocusTitle:
		// handled by the view
		return nil
	}

	c.logger.Warn().Type("effect", eff).Msg("unknown effect")
	return nil
}

// Dispatch applies ev and executes the resulting effects until no further
// events are produced. Effects of one transition run in order; the events
// they produce are dispatched depth first.
func (c *Controller) Dispatch(ctx context.Context, ev flow.Event) {
	for _, eff := range c.Apply(ev) {
		if next := c.Execute(ctx, eff); next != nil {
			c.Dispatch(ctx, next)
		}
	}
}

func outcome(err error, session uint64, ok, failed flow.Event) flow.Event {
	if err != nil {
		return failure(err, session, failed)
	}
	return ok
}

// failure turns an expired session into [flow.Unauthorized] and everything
// else into failed.
func failure(err error, session uint64, failed flow.Event) flow.Event {
	if errors.Is(err, service.ErrSessionExpired) {
		return flow.Unauthorized{Session: session}
	}
	return failed
}
