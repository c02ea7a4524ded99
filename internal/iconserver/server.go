// Package iconserver serves cluster icons over HTTP.
package iconserver

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/vasalvit/piechart"
)

// Server renders icons on request.
type Server struct {
	server  *http.Server
	router  *mux.Router
	builder *piechart.IconBuilder
}

// New returns a Server listening on addr once started.
func New(addr string, builder *piechart.IconBuilder) *Server {
	router := mux.NewRouter()
	s := &Server{
		server: &http.Server{
			Addr:         addr,
			WriteTimeout: time.Second * 15,
			ReadTimeout:  time.Second * 15,
			IdleTimeout:  time.Second * 60,
			Handler:      router,
		},
		router:  router,
		builder: builder,
	}

	router.HandleFunc("/icons/{size}", s.handleIcon).Methods(http.MethodGet)
	router.HandleFunc("/colors", s.handleColors).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves in a background goroutine.
func (s *Server) Start() {
	go func() {
		log.Printf("icon server starting on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("icon server error: %v", err)
		}
	}()
}

// Stop shuts the server down, waiting up to 30 seconds for requests in
// flight.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		log.Printf("icon server shutdown error: %v", err)
	}
	log.Println("icon server stopped")
}

// styles collects marker styles from repeated "style" parameters and
// comma separated "styles" parameters. Presets such as islands#redIcon are
// reduced to their style.
func styles(r *http.Request) []string {
	q := r.URL.Query()
	raw := append([]string(nil), q["style"]...)
	for _, list := range q["styles"] {
		raw = append(raw, strings.Split(list, ",")...)
	}

	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, piechart.PresetStyle(s))
	}
	return out
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["size"]
	ns, ok := s.builder.Config().Icons.Lookup(name)
	if !ok {
		http.Error(w, "unknown icon size "+name, http.StatusNotFound)
		return
	}

	members := styles(r)
	tally := piechart.Aggregate(members, func(s string) string { return s })
	icon, err := s.builder.RenderIcon(ns, tally, len(members))
	if err != nil {
		log.Printf("icon %s for %v: %v", name, members, err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", icon.MediaType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(icon.Image); err != nil {
		log.Printf("error writing icon: %v", err)
	}
}

func (s *Server) handleColors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.builder.Config().Colors); err != nil {
		log.Printf("error writing colors: %v", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, piechart.ErrConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, piechart.ErrInvalidInput), errors.Is(err, piechart.ErrInvariantViolation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
