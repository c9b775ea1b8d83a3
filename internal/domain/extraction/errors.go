package extraction

import (
	"errors"
	"fmt"
)

// ErrContentBlocked indicates the model refused to answer because a safety
// filter stopped the generation.
var ErrContentBlocked = errors.New("content blocked")

// ErrMalformedResponse indicates the model answered with something that could
// not be parsed as the expected JSON shape.
var ErrMalformedResponse = errors.New("malformed model response")

// ErrEmptyResponse indicates the model returned no candidates or no content.
var ErrEmptyResponse = errors.New("empty model response")

// BlockedError carries the finish reason the model reported when a safety
// filter stopped generation.
type BlockedError struct {
	FinishReason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("content blocked: %s", e.FinishReason)
}

// Is lets errors.Is match BlockedError values against ErrContentBlocked.
func (e *BlockedError) Is(target error) bool {
	return target == ErrContentBlocked
}

// APICallError wraps a transport failure from the generative model API.
type APICallError struct {
	Err error
}

func (e *APICallError) Error() string {
	return fmt.Sprintf("model api call failed: %v", e.Err)
}

func (e *APICallError) Unwrap() error {
	return e.Err
}
