package interval

import (
	"errors"
	"fmt"
)

// ErrSyntax is returned by Parse for text that is not an interval name
var ErrSyntax = errors.New("invalid interval syntax")

// InvalidClassError reports a quality that cannot qualify a size, e.g. a perfect second
type InvalidClassError struct {
	Quality Quality
	Size    Size
}

func (e *InvalidClassError) Error() string {
	return fmt.Sprintf("cannot create interval class %s %s", e.Quality, e.Size)
}
