package apitest

import (
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	tokenIssuer     = "notes-api"
	defaultTokenTTL = time.Hour
	passwordPepper  = "notes-api-pepper"
)

type account struct {
	id           string
	username     string
	passwordHash string
}

// API is the fake backend. The zero value is not usable; call [New].
type API struct {
	mu       sync.RWMutex
	accounts map[string]account       // by username
	notes    map[string][]models.Note // by user id, insertion order
	signKey  string

	tokenTTL  time.Duration
	ids       utils.IDGenerator
	now       func() time.Time
	validator validators.Validator

	router *chi.Mux
	logger *logger.Logger
}

// Option customizes an [API].
type Option func(*API)

// WithTokenTTL sets the lifetime of issued tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(a *API) { a.tokenTTL = ttl }
}

// WithClock replaces time.Now for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *API) { a.now = now }
}

func New(logger *logger.Logger, opts ...Option) *API {
	ids := utils.NewUUIDGenerator()
	a := &API{
		accounts:  make(map[string]account),
		notes:     make(map[string][]models.Note),
		signKey:   ids.Generate(),
		tokenTTL:  defaultTokenTTL,
		ids:       ids,
		now:       time.Now,
		validator: validators.NewNotesValidator(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.router = a.routes()

	return a
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// RevokeTokens makes every token issued so far fail verification.
func (a *API) RevokeTokens() {
	a.mu.Lock()
	a.signKey = a.ids.Generate()
	a.mu.Unlock()
}

// Notes returns a copy of the notes owned by username.
func (a *API) Notes(username string) []models.Note {
	a.mu.RLock()
	defer a.mu.RUnlock()

	acc, ok := a.accounts[username]
	if !ok {
		return nil
	}
	return slices.Clone(a.notes[acc.id])
}

func (a *API) currentSignKey() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.signKey
}
