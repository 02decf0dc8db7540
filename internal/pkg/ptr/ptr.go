package ptr

import (
	"time"
)

func Of[T any](v T) *T {
	return &v
}

// FormatTime renders t with layout, keeping nil as nil.
func FormatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}
