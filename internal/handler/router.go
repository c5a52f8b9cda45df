package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/solenechen/empath/internal/handler/chat"
	middlewarePkg "github.com/solenechen/empath/internal/middleware"
	"github.com/solenechen/empath/internal/service/bot"
)

// NewRouter wires HTTP routes to the conversation pipeline.
func NewRouter(botSvc *bot.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(botSvc)
	wsHandler := chathandler.NewWebSocketHandler(botSvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterWebSocketRoutes(api)
	})

	return r
}
