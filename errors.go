package docsgen

import "fmt"

// RenderError wraps a failure of the underlying drawing surface. When it
// is returned, nothing has been written to the output buffer.
type RenderError struct {
	Doc string // document kind, e.g. "job letter", "bill"
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("docsgen: rendering %s: %v", e.Doc, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
