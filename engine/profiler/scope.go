// Package profiler records named frame scopes. Recording is compiled in
// only with the "profile" build tag; otherwise every call is a no-op.
package profiler

import (
	"errors"
	"time"
)

var (
	ErrDisabled = errors.New("profiler: built without the profile tag")
	ErrEmpty    = errors.New("profiler: no scopes recorded")
)

// ScopeTotal is the time spent in one named scope over the buffered capture.
type ScopeTotal struct {
	Name  string
	Count int
	Total time.Duration
}

// Avg is the mean duration of one scope.
func (s ScopeTotal) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}
