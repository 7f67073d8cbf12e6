package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrUnavailable indicates the capability is unreachable or misconfigured:
// network failure, 5xx, missing endpoint. Generation degrades to "no puzzle
// for this slot" and scoring degrades to an incorrect verdict upstream.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err == nil {
		return "llm: provider unavailable"
	}
	return fmt.Sprintf("llm: provider unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrRateLimited indicates a 429 from the vendor. RetryAfter is honored by
// the retry decorator when the vendor supplies it.
type ErrRateLimited struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("llm: rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrBadOutput indicates the model produced content that is not valid JSON
// or does not conform to the requested schema, even after fence unwrapping.
type ErrBadOutput struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadOutput) Error() string {
	return fmt.Sprintf("llm: malformed model output: %v", e.Err)
}

func (e *ErrBadOutput) Unwrap() error { return e.Err }
