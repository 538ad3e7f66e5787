package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arise/hunter/api/internal/database"
	"github.com/arise/hunter/api/internal/model"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// problemFrom maps any error to a ProblemDetails. Service errors already
// carry one; storage sentinels map to their HTTP equivalents; anything else
// is an opaque 500.
func problemFrom(err error) *model.ProblemDetails {
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}
	if errors.Is(err, database.ErrNotFound) {
		return model.NewNotFoundError("record")
	}
	if errors.Is(err, database.ErrDuplicate) {
		return model.NewConflictError("record already exists")
	}
	return model.NewInternalError("")
}

// writeServiceError writes err as a ProblemDetails response.
func writeServiceError(w http.ResponseWriter, err error) {
	WriteError(w, problemFrom(err))
}

// writeLegacyError writes the flat {"error": message} shape the battle
// endpoints are contracted to.
func writeLegacyError(w http.ResponseWriter, err error) {
	problem := problemFrom(err)
	message := problem.Detail
	if message == "" {
		message = problem.Title
	}
	WriteJSON(w, problem.Status, map[string]string{"error": message})
}
