package api

import (
	"log/slog"
	"net/http"

	apiMiddleware "github.com/ftfltech/careers-api/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Jobs       *JobHandler
	Contacts   *ContactHandler
	Newsletter *NewsletterHandler
}

// NewRouter creates the application router with the standard middleware
// stack, the /api routes and the health check. An empty allowedOrigins
// allows any origin.
func NewRouter(h Handlers, allowedOrigins []string, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-Id"},
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Post("/post-job", h.Jobs.CreateJob)
			r.Get("/all-jobs", h.Jobs.ListJobs)
			r.Get("/applications/{jobId}", h.Jobs.GetApplications)
			r.Post("/apply/{jobId}", h.Jobs.Apply)
			r.Put("/update-job/{jobId}", h.Jobs.UpdateJob)
			r.Delete("/delete-job/{jobId}", h.Jobs.DeleteJob)
			r.Delete("/delete-application/{jobId}/{appId}", h.Jobs.DeleteApplication)
		})

		r.Route("/contact", func(r chi.Router) {
			r.Post("/submit", h.Contacts.Submit)
			r.Get("/", h.Contacts.List)
			r.Get("/{id}", h.Contacts.Get)
			r.Patch("/{id}", h.Contacts.UpdateStatus)
			r.Delete("/{id}", h.Contacts.Delete)
		})

		r.Route("/newsletter", func(r chi.Router) {
			r.Post("/subscribe", h.Newsletter.Subscribe)
			r.Post("/send", h.Newsletter.Send)
			r.Get("/subscribers", h.Newsletter.ListSubscribers)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
