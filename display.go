package vectorx

import (
	"fmt"
	"io"
	"strings"
)

// Sprint renders r as "[]" or "[e0; e1; ...; en]" with each element
// formatted by f.
func Sprint[T any](r Reader[T], f func(T) string) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Fprint(&sb, r, f)
	return sb.String()
}

// Fprint writes the Sprint rendering of r to w.
func Fprint[T any](w io.Writer, r Reader[T], f func(T) string) error {
	src := r.readable()
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	for i := 0; i < src.Len(); i++ {
		if i > 0 {
			if _, err := io.WriteString(w, "; "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, f(src.buf.At(i))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// String renders v with Sprint, formatting each element with %v.
func (v *Vector[T]) String() string {
	return Sprint[T](v, func(x T) string { return fmt.Sprint(x) })
}
