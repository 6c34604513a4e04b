package handler

import (
	"net/http"
)

// Route is the net/http pattern served by ServeHTTP
const Route = "GET /players/{" + PlayerIDParam + "}/progression"

// ServeHTTP serves Route; it must be registered with a pattern binding PlayerIDParam.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Handle(r.Context(), Request{
		PathParameters: map[string]string{PlayerIDParam: r.PathValue(PlayerIDParam)},
	})

	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	w.Write([]byte(resp.Body))
}
