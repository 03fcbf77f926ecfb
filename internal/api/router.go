package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(apiHandler *APIHandler, uploadsDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)       // Basic request logging
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// The dashboard and the public site are served from other origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/login", apiHandler.LoginHandler)
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Get("/projects", apiHandler.ListProjectsHandler)
		r.Get("/projects/{projectID}", apiHandler.GetProjectHandler)

		// Chat widget routes
		r.Post("/chat/sessions", apiHandler.CreateSessionHandler)
		r.Get("/chat/sessions/{sessionID}", apiHandler.GetSessionHandler)
		r.Post("/chat/sessions/{sessionID}/messages", apiHandler.PostChatMessageHandler)
		r.Post("/chat/messages/{messageID}/feedback", apiHandler.MessageFeedbackHandler)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(apiHandler.AdminAuthMiddleware)

			r.Post("/projects", apiHandler.CreateProjectHandler)
			r.Put("/projects/{projectID}", apiHandler.UpdateProjectHandler)
			r.Delete("/projects/{projectID}", apiHandler.DeleteProjectHandler)
			r.Post("/upload", apiHandler.UploadHandler)
		})
	})

	// Uploaded assets are served directly.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
