package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
	notesPath    = "/api/notes"
	notePath     = "/api/notes/{id}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout, TLS verification mode and a per-request X-Request-ID.
//
// Returns an error wrapping [ErrInvalidAddress] if adapterCfg.HTTPAddress is
// empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient().
		WithRequestID(utils.NewUUIDGenerator()).
		WithInsecureTLS(adapterCfg.InsecureSkipVerify)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	h := &httpServerAdapter{client: client, logger: logger}
	client.OnAfterResponse(h.logResponse)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)

	h.mu.Lock()
	h.token = token
	h.mu.Unlock()

	if token == "" {
		h.logger.Debug().Msg("bearer token cleared")
		return
	}
	// subject is informational; opaque tokens are fine
	if subject, err := utils.TokenSubject(token); err == nil {
		h.logger.Debug().Str("subject", subject).Msg("bearer token set")
	} else {
		h.logger.Debug().Msg("bearer token set")
	}
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(registerPath)
	if err != nil {
		return fmt.Errorf("register request: %w: %w", ErrServerUnreachable, err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. The answer is either {"token": "..."} or the bare
// token as the body, quoted or not. Returns [ErrEmptyToken] when a 2xx
// answer carries no token.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post(loginPath)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return parseLoginResponse(resp.Body())
}

func parseLoginResponse(body []byte) (models.LoginResponse, error) {
	raw := strings.TrimSpace(string(body))

	var envelope struct {
		Token  string `json:"token"`
		UserID any    `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil {
		if envelope.Token == "" {
			return models.LoginResponse{}, ErrEmptyToken
		}
		out := models.LoginResponse{Token: strings.TrimSpace(envelope.Token)}
		if envelope.UserID != nil {
			out.UserID = fmt.Sprint(envelope.UserID)
		}
		return out, nil
	}

	var quoted string
	if err := json.Unmarshal([]byte(raw), &quoted); err == nil {
		raw = strings.TrimSpace(quoted)
	}
	if raw == "" {
		return models.LoginResponse{}, ErrEmptyToken
	}

	return models.LoginResponse{Token: raw}, nil
}

// ListNotes implements [ServerAdapter]. It GETs /api/notes and decodes the
// JSON array. A null body yields an empty slice.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}
	if notes == nil {
		notes = []models.Note{}
	}

	return notes, nil
}

// CreateNote implements [ServerAdapter]. It POSTs in to /api/notes.
func (h *httpServerAdapter) CreateNote(ctx context.Context, in models.NoteInput) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(in).
		Post(notesPath)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return decodeNote(resp.Body())
}

// UpdateNote implements [ServerAdapter]. It PUTs in to /api/notes/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id string, in models.NoteInput) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(in).
		Put(notePath)
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w: %w", ErrServerUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return decodeNote(resp.Body())
}

// DeleteNote implements [ServerAdapter]. It sends DELETE /api/notes/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(notePath)
	if err != nil {
		return fmt.Errorf("delete note request: %w: %w", ErrServerUnreachable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decodeNote tolerates an empty body: some servers answer 204 to writes.
func decodeNote(body []byte) (models.Note, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return models.Note{}, nil
	}

	var note models.Note
	if err := json.Unmarshal(body, &note); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}
	return note, nil
}

func (h *httpServerAdapter) logResponse(_ *resty.Client, resp *resty.Response) error {
	h.logger.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("notes api call")
	return nil
}
