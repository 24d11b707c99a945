package http

import (
	"net/http"

	"medkit/internal/auth"
	"medkit/internal/config"
	"medkit/internal/http/handler"
	mw "medkit/internal/http/middleware"
	"medkit/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, docs *store.Store, users *store.CredentialStore, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{Users: users, JWT: jwtSvc}
	r.Post("/api/register", ah.Register)
	r.Post("/api/login", ah.Login)

	rh := &handler.RecordsHandler{Store: docs}
	ph := &handler.ProfileHandler{Store: docs}
	me := &handler.MeHandler{}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc))

		r.Get("/me", me.Me)

		r.Get("/medications", rh.GetMedications)
		r.Post("/medications", rh.SaveMedications)

		r.Get("/adherence", rh.GetAdherence)
		r.Post("/adherence", rh.SaveAdherence)

		r.Get("/logs", rh.GetLogs)
		r.Post("/logs", rh.SaveLogs)

		r.Get("/profile", ph.GetProfile)
		r.Post("/profile", ph.SaveProfile)
	})

	return r
}
