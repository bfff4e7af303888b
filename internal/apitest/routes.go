package apitest

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (a *API) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, a.withRequestID, a.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", a.register)
		r.Post("/api/auth/login", a.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(a.auth)
		r.Get("/api/notes", a.listNotes)
		r.Post("/api/notes", a.createNote)
		r.Put("/api/notes/{id}", a.updateNote)
		r.Delete("/api/notes/{id}", a.deleteNote)
	})

	return router
}
