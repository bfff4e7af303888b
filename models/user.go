package models

// Credentials is the body sent to the login and registration endpoints.
// Password is plaintext on the wire; transport security is the server's
// TLS configuration.
type Credentials struct {
	// Username is the account name, trimmed by the caller.
	Username string `json:"username"`

	// Password is sent as typed. Never logged.
	Password string `json:"password"`
}

// LoginResponse is the JSON form of a successful login answer. Some servers
// return the bearer token as the whole plain-text body instead.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id,omitempty"`
}

// ErrorResponse is the JSON error envelope of the notes API.
type ErrorResponse struct {
	Message string `json:"message"`
}
