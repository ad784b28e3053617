package common

import (
	"encoding/json"
	"net/http"

	apperrors "neuronotes-backend/pkg/errors"
)

// APIResponse is the uniform response envelope. Every endpoint returns it,
// success or failure; the status field mirrors the HTTP status written to
// the response (deletes report 204 in the body while the wire status stays
// 200 so the envelope itself survives).
type APIResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    interface{}            `json:"data,omitempty"`
	Status  int                    `json:"status"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// RespondSuccess writes a success envelope.
func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Status:  status,
	})
}

// RespondDeleted writes the delete-success envelope: body carries 204 but
// the wire status is 200 so clients still receive the envelope.
func RespondDeleted(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    true,
		Status:  http.StatusNoContent,
	})
}

// RespondError writes an error envelope.
func RespondError(w http.ResponseWriter, status int, message string, fields []apperrors.FieldError) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Message: message,
		Status:  status,
		Errors:  fields,
	})
}

// RespondAppError maps an application error onto the envelope. Errors that
// do not carry a kind fall through to a 500 so no implementation detail
// leaks to the client.
func RespondAppError(w http.ResponseWriter, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		RespondError(w, appErr.HTTPStatus, appErr.Message, appErr.Fields)
		return
	}
	RespondError(w, http.StatusInternalServerError, "Internal server error.", nil)
}

func writeJSON(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
