package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrRenderPanic wraps a panic recovered while rendering a chart.
var ErrRenderPanic = errors.New("chart render panicked")

// Safe runs fn and turns a panic into an error, so one broken chart can be
// skipped without taking the rest of the page with it.
func Safe(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()
	return fn()
}

// Placeholder writes the HTML comment left where a chart failed to render.
func Placeholder(w io.Writer, name string) error {
	name = strings.ReplaceAll(name, "--", "")
	_, err := fmt.Fprintf(w, "<!-- chart %q unavailable -->\n", name)
	return err
}
