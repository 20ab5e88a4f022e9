package results

import "fmt"

// ErrTokenNotFound indicates the token is unknown or its entry expired.
// Callers should treat this as "recommendations no longer available" and
// prompt for re-scoring, not as a fatal error.
type ErrTokenNotFound struct {
	Token string
}

func (e *ErrTokenNotFound) Error() string {
	return fmt.Sprintf("result token not found: %s", e.Token)
}

// ErrInvalidPage indicates a page number below 1.
type ErrInvalidPage struct {
	Page int
}

func (e *ErrInvalidPage) Error() string {
	return fmt.Sprintf("invalid page number: %d", e.Page)
}

// ErrInvalidPageSize indicates a non-positive page size.
type ErrInvalidPageSize struct {
	PageSize int
}

func (e *ErrInvalidPageSize) Error() string {
	return fmt.Sprintf("invalid page size: %d", e.PageSize)
}
