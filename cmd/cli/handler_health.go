package main

import (
	"net/http"
)

// healthHandler returns server health status and dataset state
func (rm *RouteManager) healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{
		"status":  "ok",
		"dataset": rm.app.Store.Status().String(),
	})
}
