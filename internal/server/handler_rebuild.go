package server

import (
	"errors"
	"net/http"

	"github.com/k11v/mortar/internal/rebuild"
)

// TriggerRebuild queues a rebuild for an exact crate version. It is intended
// for a single trusted caller and gated behind a shared secret.
func (h *handler) TriggerRebuild(w http.ResponseWriter, r *http.Request) {
	token := bearerTokenFromAuthorizationHeader(r.Header.Get(headerAuthorization))

	if err := h.authorizer.Authorize(token); err != nil {
		var unauthorizedErr *rebuild.UnauthorizedError
		_ = errors.As(err, &unauthorizedErr)
		h.serveJSONError(w, http.StatusUnauthorized, "Unauthorized", unauthorizedErr.Message)
		return
	}

	name := r.PathValue("name")
	version := r.PathValue("version")

	err := h.rebuilds.Trigger(r.Context(), name, version)
	var alreadyQueuedErr *rebuild.AlreadyQueuedError
	switch {
	case errors.Is(err, rebuild.ErrNotFound):
		h.serveJSONError(w, http.StatusNotFound, "Not found", "the requested crate or version does not exist")
		return
	case errors.As(err, &alreadyQueuedErr):
		h.serveJSONError(w, http.StatusBadRequest, "Bad request", alreadyQueuedErr.Error())
		return
	case err != nil:
		h.log.Error("failed to trigger rebuild", "crate", name, "version", version, "error", err)
		h.serveJSONError(w, http.StatusInternalServerError, "Internal server error", "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write([]byte("{}\n"))
}
