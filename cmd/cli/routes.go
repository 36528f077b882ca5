package main

import (
	"github.com/gorilla/mux"
)

// RouteManager handles all API routes
type RouteManager struct {
	app    *App
	Router *mux.Router
}

// NewRouteManager creates a new RouteManager instance
func NewRouteManager(app *App) *RouteManager {
	return &RouteManager{
		app:    app,
		Router: mux.NewRouter(),
	}
}

// Setup configures all API routes
func (rm *RouteManager) Setup() {
	r := rm.Router
	r.Use(rm.requestIDMiddleware)
	r.Use(rm.loggingMiddleware)

	// Health check
	r.HandleFunc("/health", rm.healthHandler).Methods("GET")

	// API v1 routes
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/manufacturers", rm.manufacturersHandler).Methods("GET")
	api.HandleFunc("/manufacturers/{manufacturer}/models", rm.modelsHandler).Methods("GET")
	api.HandleFunc("/manufacturers/{manufacturer}/models/{model}/formats", rm.formatsHandler).Methods("GET")
	api.HandleFunc("/resolve", rm.resolveHandler).Methods("GET")
}
