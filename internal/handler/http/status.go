package http

import "net/http"

const statusText = "Service is running!"

// status reports service liveness as plain text. Public on purpose: it must
// answer even when the caller presents garbage in the Authorization header.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(statusText))
}
