package response

import (
	"encoding/json"
	"net/http"

	"github.com/enyelsequeira/gym-be/internal/apperror"
)

// Page carries list-response metadata. The field names are part of the
// public API contract and mirror what clients already consume.
type Page struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

type envelope struct {
	Success      bool   `json:"success"`
	Data         any    `json:"data,omitempty"`
	Message      string `json:"message,omitempty"`
	Page         *Page  `json:"page,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorCode    int    `json:"errorCode,omitempty"`
	Details      any    `json:"details,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func JSON(w http.ResponseWriter, status int, data any, message string) {
	write(w, status, envelope{Success: true, Data: data, Message: message})
}

func Created(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusCreated, data, message)
}

func List(w http.ResponseWriter, data any, page Page) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, Message: "OK", Page: &page})
}

// Error renders any error through the apperror taxonomy. Unclassified
// errors surface as a generic 500 with no internal detail.
func Error(w http.ResponseWriter, err error) {
	appErr := apperror.From(err)
	status := appErr.StatusCode()
	write(w, status, envelope{
		Success:      false,
		ErrorMessage: appErr.Message,
		ErrorCode:    status,
		Details:      appErr.Details,
	})
}
