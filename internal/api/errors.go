package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"lifepath/internal/model"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(out)
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, model.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, model.ErrNotFound),
		errors.Is(err, model.ErrFamilyNotFound),
		errors.Is(err, model.ErrChildNotFound),
		errors.Is(err, model.ErrRelationshipNotFound),
		errors.Is(err, model.ErrDiseaseNotFound),
		errors.Is(err, model.ErrAssetNotOwned):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnknownAction), errors.Is(err, errBadArgs):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrPrecondition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
