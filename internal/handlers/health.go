package handlers

import "net/http"

// PingHandler responds to liveness probes.
type PingHandler struct{}

// Handle implements GET /ping.
func (PingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong"))
}
