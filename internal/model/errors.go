package model

import (
	"errors"
	"fmt"
)

// ErrUsage is matched by every UsageError through errors.Is
var ErrUsage = errors.New("usage error")

// UsageError reports malformed or insufficient command line input
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// Is lets errors.Is(err, ErrUsage) match any UsageError
func (e *UsageError) Is(target error) bool {
	return target == ErrUsage
}

// InvalidMethodError reports a method other than GET or POST
type InvalidMethodError struct {
	Method string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("method must be GET or POST (got %q)", e.Method)
}

// ProjectRootError reports a working directory without the project-root marker directory
type ProjectRootError struct {
	Dir    string
	Marker string
}

func (e *ProjectRootError) Error() string {
	return fmt.Sprintf("must run from project root (directory containing '%s/'), %s has none", e.Marker, e.Dir)
}

// WriteError wraps a filesystem failure during directory creation or file write
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
