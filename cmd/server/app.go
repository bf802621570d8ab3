package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"controlecompras/internal/config"
	"controlecompras/internal/handlers"
	"controlecompras/internal/httpx"
	"controlecompras/internal/services"
	"controlecompras/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
	log *logrus.Logger
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB, cfg config.Config, log *logrus.Logger) *App {
	app := &App{
		mux: http.NewServeMux(),
		db:  db,
		log: log,
	}

	st := store.New(db)
	itemSvc := services.NewItemService(st, cfg.MaxValorUnitario)
	ih := handlers.NewItemHandler(st, itemSvc, log)
	ch := handlers.NewCompanyHandler(st, log, cfg.DataDir)

	app.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Items
	app.mux.HandleFunc("GET /itens", ih.List)
	app.mux.HandleFunc("POST /itens", ih.Create)
	app.mux.HandleFunc("GET /itens/export", ih.Export)
	app.mux.HandleFunc("POST /itens/{id}", ih.Update)
	app.mux.HandleFunc("POST /itens/{id}/pago", ih.SetPaid)
	app.mux.HandleFunc("POST /itens/{id}/delete", ih.Delete)

	// Company profile
	app.mux.HandleFunc("GET /empresa", ch.Get)
	app.mux.HandleFunc("POST /empresa", ch.Save)
	app.mux.HandleFunc("GET /empresa/logo", ch.Logo)

	return app
}

// ServeHTTP implements http.Handler, logging each request on the way through.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	a.mux.ServeHTTP(w, r)
	a.log.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"duration": time.Since(start).String(),
	}).Debug("request")
}
