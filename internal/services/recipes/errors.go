package recipes

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrAlreadyFinal   = errors.New("recipe already in a terminal state")
	ErrInvalidCursor  = errors.New("invalid pagination cursor")
)

// NotFoundError carries the identifier of a missing record
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("recipe with id %s not found", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrRecipeNotFound
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecipeNotFound)
}
