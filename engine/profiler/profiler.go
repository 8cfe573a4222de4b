//go:build profile

package profiler

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hubastard/poliosis/engine/logging"
)

const Enabled = true

// rec is the process-wide capture. Scopes opened before Init are dropped.
var rec recorder

// Init sizes the capture buffer to capacity scope marks (two per scope).
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	rec.reset(capacity)
}

// Start opens a named scope and returns the func that closes it.
func Start(name string) func() {
	if !rec.ready.Load() {
		return func() {}
	}
	id := rec.names.id(name)
	t0 := time.Now().UnixNano()
	rec.record(mark{ns: t0, scope: id, open: true})
	return func() {
		rec.record(mark{ns: max(time.Now().UnixNano(), t0), scope: id})
	}
}

// Dump writes the buffered scopes to path as a speedscope evented profile.
func Dump(path string) error {
	marks := rec.marks()
	if len(marks) == 0 {
		return ErrEmpty
	}
	return writeJSON(path, speedscope(marks, rec.names.list()))
}

// OpenGraph dumps to the temp dir and launches the speedscope viewer.
func OpenGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "poliosis.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = viewerAttr()
	if err := cmd.Start(); err != nil {
		logging.Logger().Warn("speedscope not launched", "err", err, "path", path)
	}
	return path, nil
}

// Totals sums the scopes still held in the buffer, longest first.
func Totals() []ScopeTotal {
	return totals(rec.marks(), rec.names.list())
}

type mark struct {
	ns    int64
	scope int32
	open  bool
}

// recorder is a lock-free ring of scope marks. Old marks are overwritten
// once it wraps.
type recorder struct {
	ready atomic.Bool
	next  atomic.Uint64
	buf   []mark
	names nameTable
}

func (r *recorder) reset(n int) {
	r.buf = make([]mark, n)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *recorder) record(m mark) {
	i := r.next.Add(1) - 1
	r.buf[i%uint64(len(r.buf))] = m
}

// marks copies the buffer out, oldest first.
func (r *recorder) marks() []mark {
	if !r.ready.Load() {
		return nil
	}
	n, size := r.next.Load(), uint64(len(r.buf))
	from := uint64(0)
	if n > size {
		from = n - size
	}
	out := make([]mark, 0, n-from)
	for i := from; i < n; i++ {
		out = append(out, r.buf[i%size])
	}
	return out
}

type nameTable struct {
	mu    sync.Mutex
	ids   map[string]int32
	names []string
}

func (t *nameTable) id(name string) int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[name]; ok {
		return id
	}
	if t.ids == nil {
		t.ids = make(map[string]int32)
	}
	id := int32(len(t.names))
	t.ids[name] = id
	t.names = append(t.names, name)
	return id
}

func (t *nameTable) list() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.names)
}

// closeWalk pairs every close mark with its open. Closes whose open was
// overwritten by the ring are dropped. onClose gets the scope and the open
// mark's time; unclosed scopes are returned innermost last.
func closeWalk(marks []mark, onOpen func(m mark), onClose func(m mark, openedNS int64)) []mark {
	var stack []mark
	for _, m := range marks {
		if m.open {
			stack = append(stack, m)
			if onOpen != nil {
				onOpen(m)
			}
			continue
		}
		top := len(stack) - 1
		if top < 0 || stack[top].scope != m.scope {
			continue
		}
		onClose(m, stack[top].ns)
		stack = stack[:top]
	}
	return stack
}

func totals(marks []mark, names []string) []ScopeTotal {
	byID := map[int32]*ScopeTotal{}
	closeWalk(marks, nil, func(m mark, openedNS int64) {
		st := byID[m.scope]
		if st == nil {
			st = &ScopeTotal{Name: names[m.scope]}
			byID[m.scope] = st
		}
		st.Count++
		st.Total += time.Duration(m.ns - openedNS)
	})
	out := make([]ScopeTotal, 0, len(byID))
	for _, st := range byID {
		out = append(out, *st)
	}
	slices.SortFunc(out, func(a, b ScopeTotal) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// speedscope file format, evented profile flavour.
type (
	ssFile struct {
		Schema   string      `json:"$schema"`
		Shared   ssShared    `json:"shared"`
		Profiles []ssProfile `json:"profiles"`
		Exporter string      `json:"exporter,omitempty"`
	}
	ssShared struct {
		Frames []ssFrame `json:"frames"`
	}
	ssFrame struct {
		Name string `json:"name"`
	}
	ssProfile struct {
		Type       string    `json:"type"`
		Name       string    `json:"name"`
		Unit       string    `json:"unit"`
		StartValue int64     `json:"startValue"`
		EndValue   int64     `json:"endValue"`
		Events     []ssEvent `json:"events"`
	}
	ssEvent struct {
		Type  string `json:"type"`
		At    int64  `json:"at"`
		Frame int    `json:"frame"`
	}
)

// speedscope converts marks to balanced open/close events in microseconds
// from the first mark.
func speedscope(marks []mark, names []string) ssFile {
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	origin := marks[0].ns
	var (
		events []ssEvent
		last   int64
	)
	emit := func(kind string, m mark) {
		at := max((m.ns-origin)/int64(time.Microsecond), last)
		events = append(events, ssEvent{Type: kind, At: at, Frame: int(m.scope)})
		last = at
	}
	dangling := closeWalk(marks,
		func(m mark) { emit("O", m) },
		func(m mark, _ int64) { emit("C", m) })
	for i := len(dangling) - 1; i >= 0; i-- {
		events = append(events, ssEvent{Type: "C", At: last, Frame: int(dangling[i].scope)})
	}

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "poliosis frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   events,
		}},
		Exporter: "poliosis",
	}
}

// writeJSON replaces path atomically.
func writeJSON(path string, v any) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	defer os.Remove(f.Name())
	if err := json.NewEncoder(f).Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(f.Name(), path)
}
