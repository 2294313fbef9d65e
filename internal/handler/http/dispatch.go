package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/router"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
)

// dispatch buffers the whole body, converts the request and writes the
// dispatcher's JSON response.
func (h *Handler) dispatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("error reading request body")
			if _, err = utils.WriteJSON(w, struct{}{}, http.StatusInternalServerError); err != nil {
				log.Err(err).Msg("error writing response")
			}
			return
		}

		req := router.NewRequest(r.URL.Path, r.URL.Query(), r.Method, r.Header, string(body))

		status, payload := h.router.Serve(r.Context(), req)
		if _, err = utils.WriteRawJSON(w, payload, status); err != nil {
			log.Err(err).Msg("error writing response")
		}
	}
}
