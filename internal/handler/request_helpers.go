package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error, the response has already been written and the handler should return.
//
// Example usage:
//
//	var req OpenLootboxRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpOpenLootbox); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If it is missing, a 400 is written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetValidatedQueryParam is GetQueryParam plus a validator tag check, e.g. "uuid".
func GetValidatedQueryParam(r *http.Request, w http.ResponseWriter, paramName, tag string) (string, bool) {
	value, ok := GetQueryParam(r, w, paramName)
	if !ok {
		return "", false
	}
	if err := GetValidator().ValidateVar(value, tag); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  fmt.Sprintf(ErrMsgInvalidQueryParam, paramName),
			Fields: map[string]string{paramName: tagMessage(tag, "")},
		})
		return "", false
	}
	return value, true
}
