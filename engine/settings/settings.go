// Package settings is a typed key/value store for game tunables.
// Values are bools, floats or strings and round-trip through YAML.
package settings

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound  = errors.New("settings: not found")
	ErrWrongType = errors.New("settings: wrong type")
)

type Kind int

const (
	KindBool Kind = iota
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

type Value struct {
	Kind Kind
	b    bool
	f    float64
	s    string
}

func Bool(v bool) Value     { return Value{Kind: KindBool, b: v} }
func Float(v float64) Value { return Value{Kind: KindFloat, f: v} }
func String(v string) Value { return Value{Kind: KindString, s: v} }
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.b
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}

type Store struct {
	values map[string]Value
}

func New() *Store { return &Store{values: map[string]Value{}} }

func (s *Store) Set(name string, v Value)        { s.values[name] = v }
func (s *Store) SetBool(name string, v bool)     { s.Set(name, Bool(v)) }
func (s *Store) SetFloat(name string, v float64) { s.Set(name, Float(v)) }
func (s *Store) SetString(name string, v string) { s.Set(name, String(v)) }

func (s *Store) Lookup(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the named setting as T, failing with ErrNotFound or
// ErrWrongType.
func Get[T bool | float64 | string](s *Store, name string) (T, error) {
	var zero T
	v, ok := s.values[name]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	t, ok := v.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is a %s", ErrWrongType, name, v.Kind)
	}
	return t, nil
}

// GetOr returns def when the setting is missing or of another type.
func GetOr[T bool | float64 | string](s *Store, name string, def T) T {
	v, err := Get[T](s, name)
	if err != nil {
		return def
	}
	return v
}

// Merge copies every value of o over s.
func (s *Store) Merge(o *Store) {
	for k, v := range o.values {
		s.values[k] = v
	}
}

func (s *Store) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if s.values == nil {
		s.values = map[string]Value{}
	}
	for k, r := range raw {
		switch v := r.(type) {
		case bool:
			s.values[k] = Bool(v)
		case int:
			s.values[k] = Float(float64(v))
		case float64:
			s.values[k] = Float(v)
		case string:
			s.values[k] = String(v)
		default:
			return fmt.Errorf("settings: %q has unsupported value %v", k, r)
		}
	}
	return nil
}

func (s *Store) MarshalYAML() (any, error) {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v.Interface()
	}
	return out, nil
}

// Load reads a flat YAML mapping. A missing file yields an empty store.
func Load(path string) (*Store, error) {
	s := New()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings %s: %w", path, err)
	}
	return nil
}

// LoadOrCreate reads path on top of defaults. A missing file is written out
// with the defaults so there is something to edit next time.
func LoadOrCreate(path string, defaults *Store) (*Store, error) {
	out := New()
	out.Merge(defaults)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := out.Save(path); err != nil {
			return nil, err
		}
		return out, nil
	}
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	out.Merge(s)
	return out, nil
}
