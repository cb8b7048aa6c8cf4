package crop

import (
	"errors"
	"fmt"
)

// ErrNoImage is returned by operations that need a loaded source image.
var ErrNoImage = errors.New("no image loaded")

// DecodeError reports a source image that could not be read or decoded.
// The session keeps its previous state when Open fails.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a failed write of the cropped result.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
