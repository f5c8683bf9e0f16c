package lesspipe

import (
	"fmt"
	"strings"
)

// NotFoundError reports a logical path with no matching source file.
type NotFoundError struct {
	Logical []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no stylesheet source for %q", strings.Join(e.Logical, "/"))
}

// CompileError reports a source the preprocessor rejected. It carries the
// source path and wraps the preprocessor's own message.
type CompileError struct {
	Path string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s: %v", e.Path, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
