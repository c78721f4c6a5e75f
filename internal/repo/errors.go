package repo

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/lib/pq"
)

const quantityConstraint = "products_quantity_check"

// classify maps postgres failures that callers can act on to domain errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "40001", "40P01", "55P03", "57014":
		// serialization_failure, deadlock_detected, lock_not_available, query_canceled
		return fmt.Errorf("%w: %w", entities.ErrConflict, err)
	case "23514":
		if pqErr.Constraint == quantityConstraint {
			return fmt.Errorf("%w: %w", entities.ErrInsufficientStock, err)
		}
	}
	return err
}
