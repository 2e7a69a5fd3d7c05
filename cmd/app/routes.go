package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"ptaxservice/internal/api"
	"ptaxservice/internal/api/middleware"
	"ptaxservice/internal/service"
)

func (app *App) initHTTP(svc service.ConversionServiceInterface) {
	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           app.newRouter(svc),
		ReadHeaderTimeout: 5 * time.Second,
		// Leaves room for the upstream timeout on top of request handling.
		WriteTimeout: time.Duration(app.cfg.SGS.Timeout+10) * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (app *App) newRouter(svc service.ConversionServiceInterface) http.Handler {
	loc := app.cfg.Location()

	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(middleware.RecoverJSONMiddleware(app.logger))
	r.Use(middleware.CORSMiddleware(app.cfg.Server.CORSAllowedOrigins))
	r.Use(chimiddleware.CleanPath)

	r.NotFound(api.HandleNotFound())
	r.MethodNotAllowed(api.HandleMethodNotAllowed())

	r.Get("/health", api.HandleHealth())
	r.Route("/api", func(r chi.Router) {
		r.Get("/info", api.HandleInfo())
		r.Post("/convert", api.HandleConvert(svc, loc))
		r.Get("/rate", api.HandleGetRate(svc, loc))
	})

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	return r
}
