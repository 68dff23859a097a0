package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned by the operational endpoints. The dashboard
// endpoints never return these: upstream failures there degrade to
// empty data instead of an error status.
const (
	// Validation errors
	ErrInvalidRequest = "VAL_001"
	ErrUnknownCache   = "VAL_002"

	// Server errors
	ErrInternalServer  = "SRV_001"
	ErrExternalService = "SRV_002"
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnknownCache:    http.StatusNotFound,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrExternalService: http.StatusBadGateway,
}

// APIError is the standardized error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload with the HTTP
// status mapped from the code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
