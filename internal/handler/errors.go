package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/utils"
)

// writeServiceError maps engine errors onto the envelope. Only unexpected
// errors are logged; their text never reaches the client.
func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var (
		validationErr *entities.ValidationError
		stockErr      *entities.InsufficientStockError
		transitionErr *entities.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		details := make([]utils.FieldDetail, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			details = append(details, utils.FieldDetail{Field: f.Field, Message: f.Message})
		}
		utils.WriteErrorDetails(w, "validation failed", details, http.StatusBadRequest)
	case errors.As(err, &stockErr):
		utils.WriteError(w, stockErr.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock):
		utils.WriteError(w, entities.ErrInsufficientStock.Error(), http.StatusBadRequest)
	case errors.As(err, &transitionErr):
		utils.WriteError(w, transitionErr.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidID):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "access denied", http.StatusForbidden)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		w.Header().Set("Retry-After", "1")
		utils.WriteError(w, entities.ErrConflict.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
