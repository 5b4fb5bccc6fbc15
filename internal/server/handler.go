package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/k11v/mortar/internal/docbuild"
	"github.com/k11v/mortar/internal/rebuild"
	"github.com/k11v/mortar/internal/release"
)

const headerAuthorization = "Authorization"

type handler struct {
	mux *http.ServeMux

	resolver   *release.Resolver   // required
	builds     docbuild.Database   // required
	rebuilds   *rebuild.Service    // required
	authorizer *rebuild.Authorizer // required
	log        *slog.Logger        // required
}

func newHandler(resolver *release.Resolver, builds docbuild.Database, rebuilds *rebuild.Service, authorizer *rebuild.Authorizer, log *slog.Logger, development bool) *handler {
	mux := http.NewServeMux()
	h := &handler{
		mux:        mux,
		resolver:   resolver,
		builds:     builds,
		rebuilds:   rebuilds,
		authorizer: authorizer,
		log:        log,
	}

	if development {
		mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	mux.HandleFunc("GET /health", h.GetHealth)

	mux.HandleFunc("GET /crate/{name}/{version}/builds", h.GetBuilds)
	mux.HandleFunc("GET /crate/{name}/{version}/builds.json", h.GetBuildsJSON)
	mux.HandleFunc("POST /crate/{name}/{version}/rebuild", h.TriggerRebuild)

	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New()
	h.log.Info("handling request", "id", requestID, "method", r.Method, "path", r.URL.Path)
	h.mux.ServeHTTP(w, r)
}

func (h *handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}

	resp := response{Status: "ok"}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}

// serveJSONError writes a structured error body in the shape the rebuild
// endpoint's caller expects.
func (h *handler) serveJSONError(w http.ResponseWriter, statusCode int, title, message string) {
	type response struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response{Title: title, Message: message})
}

func (h *handler) serveServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("failed to handle request", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// serveRedirect redirects to the canonical path of the requested resource.
// Canonical paths name a specific version and are immutable, so the redirect
// is cacheable at the edge forever.
func (h *handler) serveRedirect(w http.ResponseWriter, r *http.Request, target string) {
	w.Header().Set("Cache-Control", CacheForeverInCdn.CacheControl())
	http.Redirect(w, r, target, http.StatusFound)
}

// bearerTokenFromAuthorizationHeader returns nil for a missing header or one
// that doesn't carry a bearer token.
func bearerTokenFromAuthorizationHeader(h string) *string {
	scheme, params, _ := strings.Cut(h, " ")
	if !strings.EqualFold(scheme, "Bearer") || params == "" {
		return nil
	}
	return &params
}
