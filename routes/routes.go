package routes

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Dosada05/bracket-editor/docs" // регистрирует OpenAPI документ
	"github.com/Dosada05/bracket-editor/handlers"
	"github.com/Dosada05/bracket-editor/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Session   *handlers.SessionHandler
	Match     *handlers.MatchHandler
	Team      *handlers.TeamHandler
	Archive   *handlers.ArchiveHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	SessionExists  middleware.SessionExistsFunc
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// WebSocket живет дольше таймаута запроса, поэтому вне группы с Timeout
	router.With(middleware.RequireSession(opts.SessionExists)).
		Get("/ws/sessions/{sessionID}", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Post("/sessions", h.Session.CreateSession)

		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Use(middleware.RequireSession(opts.SessionExists))

			r.Get("/", h.Session.GetSession)
			r.Delete("/", h.Session.DeleteSession)

			r.Post("/reset", h.Session.Reset)
			r.Post("/shuffle", h.Session.Shuffle)
			r.Post("/seed", h.Session.SeedByRank)
			r.Post("/size", h.Session.ChangeSize)
			r.Post("/schedule", h.Session.AutoSchedule)
			r.Post("/undo", h.Session.Undo)
			r.Post("/redo", h.Session.Redo)
			r.Put("/settings", h.Session.UpdateSettings)

			r.Post("/import", h.Session.Import)
			r.Post("/import/single-elimination", h.Session.ImportSingleElimination)
			r.Get("/export", h.Session.Export)
			r.Get("/single-elimination", h.Session.SingleElimination)

			r.Post("/group-stage", h.Session.GenerateGroupStage)
			r.Put("/group-stage/matches/{matchID}", h.Session.UpdateGroupMatch)

			r.Route("/matches/{matchID}", func(r chi.Router) {
				r.Put("/", h.Match.UpdateMatch)
				r.Post("/forfeit", h.Match.Forfeit)
				r.Post("/quick-score", h.Match.QuickScore)
				r.Post("/swap", h.Match.Swap)
			})

			r.Post("/teams", h.Team.AddTeam)
			r.Patch("/teams/{teamID}", h.Team.UpdateTeam)
			r.Delete("/teams/{teamID}", h.Team.RemoveTeam)
			r.Post("/teams/{teamID}/logo", h.Team.UploadTeamLogo)

			r.Post("/archive", h.Archive.ArchiveSession)
			r.Get("/archives", h.Archive.ListArchives)
		})

		r.Get("/archives/{archiveID}", h.Archive.GetArchive)
	})
}
