package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrService    = errors.New("downstream service failure")
	ErrNilRequest = errors.New("request must not be nil")
)

// DownstreamValidationError carries a 400 message propagated from a
// collaborator so it can be displayed field-level by the front-end.
type DownstreamValidationError struct {
	Message string
}

func (e *DownstreamValidationError) Error() string {
	return fmt.Sprintf("downstream rejected request: %s", e.Message)
}
