package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/k11v/mortar/internal/docbuild"
	"github.com/k11v/mortar/internal/release"
)

// resolveTarget resolves the request's crate and version path values,
// serving a not-found or canonical-path redirect itself. The returned match
// is nil if the response was already served.
func (h *handler) resolveTarget(w http.ResponseWriter, r *http.Request, suffix string) *release.Match {
	name := r.PathValue("name")
	specifier := r.PathValue("version")

	req, err := release.ParseReqVersion(specifier)
	if err != nil {
		http.NotFound(w, r)
		return nil
	}

	m, err := h.resolver.Resolve(r.Context(), name, req)
	if errors.Is(err, release.ErrNotFound) {
		http.NotFound(w, r)
		return nil
	} else if err != nil {
		h.serveServerError(w, r, err)
		return nil
	}

	if m.NeedsRedirect(name) {
		h.serveRedirect(w, r, fmt.Sprintf("/crate/%s/%s/%s", m.Name, m.CanonicalSpecifier(), suffix))
		return nil
	}

	return m
}

func (h *handler) GetBuilds(w http.ResponseWriter, r *http.Request) {
	m := h.resolveTarget(w, r, "builds")
	if m == nil {
		return
	}

	builds, err := h.builds.GetBuilds(r.Context(), &docbuild.DatabaseGetBuildsParams{
		Name:    m.Name,
		Version: m.Version.String(),
	})
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}

	// A release whose only attempts are in progress has nothing to show
	// yet, same as an unknown one.
	if len(builds) == 0 {
		http.NotFound(w, r)
		return
	}

	page, err := h.execute("builds.html.tmpl", &ExecuteBuildsPageParams{
		Name:    m.Name,
		Version: m.Version.String(),
		Builds:  builds,
	})
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Cache-Control", CacheNoCaching.CacheControl())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func (h *handler) GetBuildsJSON(w http.ResponseWriter, r *http.Request) {
	m := h.resolveTarget(w, r, "builds.json")
	if m == nil {
		return
	}

	builds, err := h.builds.GetBuilds(r.Context(), &docbuild.DatabaseGetBuildsParams{
		Name:    m.Name,
		Version: m.Version.String(),
	})
	if err != nil {
		h.serveServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", CacheNoStoreMustRevalidate.CacheControl())
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(docbuild.JSONBuildsFromBuilds(builds)); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}
