package apitest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if err := a.validator.Validate(r.Context(), creds); err != nil {
		log.Debug().Err(err).Msg("invalid credentials body")
		utils.WriteMessage(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	a.mu.Lock()
	if _, exists := a.accounts[creds.Username]; exists {
		a.mu.Unlock()
		log.Debug().Str("username", creds.Username).Msg("username already taken")
		utils.WriteMessage(w, "User already exists", http.StatusConflict)
		return
	}
	acc := account{
		id:           a.ids.Generate(),
		username:     creds.Username,
		passwordHash: utils.HashString(creds.Password, passwordPepper),
	}
	a.accounts[acc.username] = acc
	a.mu.Unlock()

	log.Debug().Str("user_id", acc.id).Msg("user registered")
	utils.WriteMessage(w, "User registered successfully", http.StatusCreated)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	a.mu.RLock()
	acc, ok := a.accounts[strings.TrimSpace(creds.Username)]
	a.mu.RUnlock()
	if !ok || !utils.EqualHash(acc.passwordHash, utils.HashString(creds.Password, passwordPepper)) {
		log.Debug().Str("username", creds.Username).Msg("invalid login/password")
		utils.WriteMessage(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, acc.id, a.tokenTTL, a.currentSignKey())
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Token: token, UserID: acc.id}, http.StatusOK)
}
