package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/splitledger/docs"
	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/internal/chat"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/group"
	"github.com/fkhayef/splitledger/internal/user"
	mw "github.com/fkhayef/splitledger/pkg/middleware"
)

// Router builds the HTTP API
func (a *App) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger)
	r.Use(middleware.Recoverer)
	if a.Metrics != nil {
		r.Use(mw.Metrics(a.Metrics))
	}
	r.Use(mw.CORS(a.Config.CORSOrigins...))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := a.DB.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if a.Metrics != nil {
		r.Handle("/metrics", a.Metrics.Handler())
	}

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/users", user.NewHandler(a.Users).Routes())
		r.Mount("/groups", group.NewHandler(a.Groups).Routes())
		r.Mount("/expenses", expense.NewHandler(a.Expenses).Routes())
		r.Mount("/balances", balance.NewHandler(a.Balances).Routes())
		r.Mount("/chat", chat.NewHandler(a.Chat).Routes())
	})

	return r
}
