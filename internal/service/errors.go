package service

import (
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/trm"
)

// isTransient reports aborts caused by concurrent writers or the transaction deadline.
func isTransient(err error) bool {
	return errors.Is(err, entities.ErrConflict) || errors.Is(err, trm.ErrTimeout)
}

func asConflict(err error) error {
	if errors.Is(err, trm.ErrTimeout) && !errors.Is(err, entities.ErrConflict) {
		return fmt.Errorf("%w: %w", entities.ErrConflict, err)
	}
	return err
}
