package adapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
)

const maxMessageLen = 200

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(resp.StatusCode(), extractMessage(resp.Body()))
}

// extractMessage reads a reason from an error body. Accepted shapes are
// {"message": "..."} (or "error"), a bare JSON string and plain text.
func extractMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil {
		if msg := strings.TrimSpace(envelope.Message); msg != "" {
			return truncate(msg)
		}
		return truncate(strings.TrimSpace(envelope.Error))
	}

	var str string
	if err := json.Unmarshal([]byte(raw), &str); err == nil {
		return truncate(strings.TrimSpace(str))
	}

	// other JSON values carry no readable reason
	if json.Valid([]byte(raw)) || strings.HasPrefix(raw, "<") {
		return ""
	}

	return truncate(raw)
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxMessageLen {
		return s
	}
	return string([]rune(s)[:maxMessageLen]) + "..."
}
