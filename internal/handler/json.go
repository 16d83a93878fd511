package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MikhailRaia/link-shortener/internal/logger"
	"github.com/MikhailRaia/link-shortener/internal/model"
	"github.com/MikhailRaia/link-shortener/internal/service"
)

const maxRequestBody = 1 << 20

const msgShortCodeExists = "Short code already exists. Please choose another."

func (h *Handler) handleShorten(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request model.ShortenRequest
	if err := decodeSingleJSON(http.MaxBytesReader(w, r.Body, maxRequestBody), &request); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	code, err := h.linkService.Shorten(r.Context(), request.URL, request.ShortCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrURLRequired),
			errors.Is(err, service.ErrInvalidURL),
			errors.Is(err, service.ErrInvalidShortCode):
			respondText(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrShortCodeExists):
			respondText(w, http.StatusBadRequest, msgShortCodeExists)
		default:
			logger.FromContext(r.Context()).Error().Err(err).Msg("Failed to shorten URL")
			respondText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	respondJSON(w, http.StatusOK, model.ShortenResponse{
		Success:   true,
		ShortCode: code,
	})
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodeSingleJSON decodes exactly one JSON value from r and rejects anything after it.
func decodeSingleJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}
