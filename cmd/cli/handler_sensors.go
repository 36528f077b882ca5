package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/models"
	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/selector"
)

// manufacturersHandler returns the manufacturer choice list
func (rm *RouteManager) manufacturersHandler(w http.ResponseWriter, r *http.Request) {
	ds := rm.app.Store.Dataset()
	respondJSON(w, selector.ManufacturerChoices(ds))
}

// modelsHandler returns the model choice list for a manufacturer
func (rm *RouteManager) modelsHandler(w http.ResponseWriter, r *http.Request) {
	ds := rm.app.Store.Dataset()
	vars := mux.Vars(r)
	respondJSON(w, selector.ModelChoices(ds, vars["manufacturer"]))
}

// formatsHandler returns the format choice list for a manufacturer and model
func (rm *RouteManager) formatsHandler(w http.ResponseWriter, r *http.Request) {
	ds := rm.app.Store.Dataset()
	vars := mux.Vars(r)
	respondJSON(w, selector.FormatChoices(ds, vars["manufacturer"], vars["model"]))
}

// resolveResponse carries the resolved leaf values. Fields a selection
// cannot resolve stay null; a lookup miss is a plain response, never an
// HTTP error.
type resolveResponse struct {
	Manufacturer string             `json:"manufacturer"`
	Model        string             `json:"model"`
	Format       string             `json:"format"`
	SensorSize   *models.SensorSize `json:"sensor_size"`
	Resolution   *models.Resolution `json:"resolution"`
}

// resolveHandler resolves a full selection to its sensor size and resolution
func (rm *RouteManager) resolveHandler(w http.ResponseWriter, r *http.Request) {
	ds := rm.app.Store.Dataset()
	query := r.URL.Query()

	resp := resolveResponse{
		Manufacturer: query.Get("manufacturer"),
		Model:        query.Get("model"),
		Format:       query.Get("format"),
	}

	if size, ok := selector.ResolveSensorDimensions(ds, resp.Manufacturer, resp.Model, resp.Format); ok {
		resp.SensorSize = &size
	}
	if res, ok := selector.ResolveResolution(ds, resp.Manufacturer, resp.Model, resp.Format); ok {
		resp.Resolution = &res
	}

	respondJSON(w, resp)
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
