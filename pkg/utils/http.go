package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope shared by every endpoint.
// swagger:model Response
type Response struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail describes one invalid request field
// swagger:model FieldDetail
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, data any, code int) error {
	return WriteJSON(w, Response{Success: true, Data: data}, code)
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, Response{Success: false, Error: message}, code)
}

func WriteErrorDetails(w http.ResponseWriter, message string, details []FieldDetail, code int) error {
	return WriteJSON(w, Response{Success: false, Error: message, Details: details}, code)
}

// WriteValidationError renders validator errors as field details.
func WriteValidationError(w http.ResponseWriter, err error) error {
	return WriteErrorDetails(w, "validation failed", ValidationDetails(err), http.StatusBadRequest)
}

func ValidationDetails(err error) []FieldDetail {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldDetail{{Field: "body", Message: err.Error()}}
	}

	details := make([]FieldDetail, 0, len(ve))
	for _, fe := range ve {
		details = append(details, FieldDetail{
			Field:   fieldPath(fe.Namespace()),
			Message: tagMessage(fe),
		})
	}
	return details
}

func DecodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// fieldPath drops the root struct name: "createOrderRequest.ShippingAddress.City" -> "ShippingAddress.City".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid id"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
