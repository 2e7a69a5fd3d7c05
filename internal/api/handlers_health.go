package api

import (
	"net/http"
)

// ServiceName and Version identify the service in /health and /api/info.
const (
	ServiceName = "invoice_description_generator"
	Version     = "1.0.0"
)

// HealthResponse represents the liveness response
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"invoice_description_generator"`
	Version string `json:"version" example:"1.0.0"`
}

// InfoResponse is the static API descriptor
type InfoResponse struct {
	Name        string            `json:"name" example:"Invoice Description Generator API"`
	Version     string            `json:"version" example:"1.0.0"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
	Source      string            `json:"source" example:"SGS - Banco Central do Brasil"`
	Format      string            `json:"format" example:"DDMMYYYY para datas"`
}

var info = InfoResponse{
	Name:        "Invoice Description Generator API",
	Version:     Version,
	Description: "API para geração de descrições de conversão de moeda",
	Endpoints: map[string]string{
		"POST /api/convert": "Gerar texto de conversão",
		"GET /api/rate":     "Buscar cotação do dólar",
		"GET /api/info":     "Informações da API",
		"GET /health":       "Health check",
	},
	Source: sourceName,
	Format: "DDMMYYYY para datas",
}

// HandleHealth godoc
// @Summary Health check (liveness)
// @Description Always returns 200 if the service is running. The upstream rate service is not probed.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is up"
// @Router /health [get]
func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: ServiceName,
			Version: Version,
		})
	}
}

// HandleInfo godoc
// @Summary API descriptor
// @Description Static description of the endpoints, data source and date format.
// @Tags health
// @Produce json
// @Success 200 {object} InfoResponse "API information"
// @Router /api/info [get]
func HandleInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, info)
	}
}

// HandleNotFound answers unknown routes with a JSON error.
func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgNotFound)
	}
}

// HandleMethodNotAllowed answers known routes called with the wrong method.
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgNotAllowed)
	}
}
