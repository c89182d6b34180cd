package status

import "sync/atomic"

// Label is a string metric such as the current game phase
type Label struct {
	v atomic.Pointer[string]
}

func (l *Label) Store(s string) {
	l.v.Store(&s)
}

// Load returns the last stored value, empty before the first Store
func (l *Label) Load() string {
	if p := l.v.Load(); p != nil {
		return *p
	}
	return ""
}
