package usecase

import (
	"errors"
	"strings"
	"time"

	"scale_workshop/internal/domain/entities"
)

// now is the clock of every use case; tests replace it.
var now = func() time.Time { return time.Now().UTC() }

// errorClass is the metrics label of a failed operation.
func errorClass(err error) string {
	switch {
	case errors.Is(err, entities.ErrInvalidLineItem):
		return "invalid_line_item"
	case errors.Is(err, entities.ErrValidation):
		return "validation"
	case errors.Is(err, entities.ErrPreconditionFailed):
		return "precondition"
	case errors.Is(err, entities.ErrOutOfOrderTransition):
		return "out_of_order"
	case errors.Is(err, entities.ErrUniquenessConflict):
		return "conflict"
	case errors.Is(err, entities.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}

func requireID(field, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", entities.NewValidationError(field, "is required")
	}
	return id, nil
}
