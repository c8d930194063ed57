package router

import (
	"net/http"

	"resume-screener/internal/handlers"
	"resume-screener/internal/middleware"
	"resume-screener/internal/services"
	"resume-screener/internal/utils"

	"github.com/gorilla/mux"
)

func NewRouter(service services.ScreeningService, logger *utils.Logger, maxFileSize int64) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	screeningHandler := handlers.NewScreeningHandler(service, logger, maxFileSize)

	// Routes
	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Screening endpoints
	api.HandleFunc("/screen/institutes", screeningHandler.FilterByInstitute).Methods(http.MethodPost)
	api.HandleFunc("/screen/role", screeningHandler.MatchRole).Methods(http.MethodPost)
	api.HandleFunc("/history", screeningHandler.History).Methods(http.MethodGet)
	api.HandleFunc("/files/{filename}", screeningHandler.GetFile).Methods(http.MethodGet)

	return r
}
