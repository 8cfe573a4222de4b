package profiler

import "runtime"

// MemStats is the slice of runtime memory statistics the debug overlay shows.
type MemStats struct {
	Alloc      uint64
	Mallocs    uint64
	NumGC      uint32
	Goroutines int
}

// ReadMemStats stops the world briefly; call it at most a few times a second.
func ReadMemStats() MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemStats{
		Alloc:      m.Alloc,
		Mallocs:    m.Mallocs,
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}
