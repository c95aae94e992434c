package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"medlink/internal/common"
)

// NewRouter builds the base router with request logging and a health
// endpoint. Handlers mount themselves on the public or protected
// subrouters.
func NewRouter(logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging(logger))
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	return r
}

// Protected returns a subrouter that requires a valid bearer token.
func Protected(r *mux.Router) *mux.Router {
	sub := r.NewRoute().Subrouter()
	sub.Use(common.AuthMiddleware)
	return sub
}

// Public returns a subrouter with CORS handling for browser callers.
func Public(r *mux.Router) *mux.Router {
	sub := r.NewRoute().Subrouter()
	sub.Use(CORS)
	return sub
}
