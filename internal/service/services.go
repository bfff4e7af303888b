package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// ClientServices groups the services used by the controller.
type ClientServices struct {
	AuthService    AuthService
	SessionService SessionService
	NotesService   NotesService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewAuthService(serverAdapter, logger),
		SessionService: NewSessionService(storages.Session, serverAdapter, logger),
		NotesService:   NewNotesService(serverAdapter, logger),
	}
}
