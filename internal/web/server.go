// Package web exposes the solver over HTTP: a thin external collaborator
// per spec §1/§6 that borrows the orchestrator's stream and serializes
// each element, the way the teacher's internal/web/server.go borrows
// its sticker solver's result.
package web

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// Server wraps a gorilla/mux router exposing the solver API.
type Server struct {
	router *mux.Router
}

// NewServer builds a Server with routes registered.
func NewServer() *Server {
	s := &Server{router: mux.NewRouter()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/api/solve", handleSolve).Methods(http.MethodPost)
	s.router.HandleFunc("/api/health", handleHealth).Methods(http.MethodGet)
}

// Start blocks serving addr.
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
