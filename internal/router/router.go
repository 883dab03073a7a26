package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/onia-prep/questgen/internal/aigen"
	"github.com/onia-prep/questgen/internal/config"
	"github.com/onia-prep/questgen/internal/middlewares"
	"github.com/onia-prep/questgen/internal/question"
)

const landingPage = "static/index.html"

type RouterConfig struct {
	AIGenHandler    *aigen.Handler
	QuestionHandler *question.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", root)
	r.Mount("/question", aigen.Routes(cfg.AIGenHandler))
	r.Mount("/questoes", question.Routes(cfg.QuestionHandler))

	return r
}

// root serve a página estática quando ela existe ao lado do binário; caso
// contrário responde o aviso mínimo em JSON.
func root(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(landingPage); err == nil {
		http.ServeFile(w, r, landingPage)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"msg": "ONIA Question Generator API"})
}
