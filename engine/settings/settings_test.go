package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTypedGetSet(t *testing.T) {
	s := New()
	s.SetBool("bool_setting", false)
	s.SetFloat("float_setting", 1.0)
	s.SetString("string_setting", "string")

	if v, err := Get[bool](s, "bool_setting"); err != nil || v != false {
		t.Errorf("bool = %v, %v", v, err)
	}
	if v, err := Get[float64](s, "float_setting"); err != nil || v != 1.0 {
		t.Errorf("float = %v, %v", v, err)
	}
	if v, err := Get[string](s, "string_setting"); err != nil || v != "string" {
		t.Errorf("string = %q, %v", v, err)
	}

	s.SetBool("float_setting", true)
	if v, _ := Get[bool](s, "float_setting"); !v {
		t.Error("overwrite with another type did not take")
	}
}

func TestGetErrors(t *testing.T) {
	s := New()
	s.SetString("name", "x")
	if _, err := Get[bool](s, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing: err = %v", err)
	}
	if _, err := Get[float64](s, "name"); !errors.Is(err, ErrWrongType) {
		t.Errorf("wrong type: err = %v", err)
	}
	if got := GetOr(s, "name", 3.5); got != 3.5 {
		t.Errorf("GetOr wrong type = %v, want default", got)
	}
	if got := GetOr(s, "name", "y"); got != "x" {
		t.Errorf("GetOr = %q, want x", got)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	data := "tile_ratio: 15\nstart_money: 50000\npaused: true\nsave_name: base\nrent: 1.2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"paused", "rent", "save_name", "start_money", "tile_ratio"}
	keys := s.Keys()
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
	if v := GetOr(s, "tile_ratio", 0.0); v != 15 {
		t.Errorf("integer value = %v, want float 15", v)
	}
	if v := GetOr(s, "rent", 0.0); v != 1.2 {
		t.Errorf("rent = %v", v)
	}

	out := filepath.Join(dir, "out.yaml")
	if err := s.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := Load(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for _, k := range want {
		a, _ := s.Lookup(k)
		b, ok := back.Lookup(k)
		if !ok || a != b {
			t.Errorf("%s: reloaded %v, want %v", k, b, a)
		}
	}
}

func TestLoadMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(filepath.Join(dir, "none.yaml"))
	if err != nil || len(s.Keys()) != 0 {
		t.Errorf("missing file: %v, %v", s.Keys(), err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("nested:\n  a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("nested mapping accepted")
	}
}

func TestMerge(t *testing.T) {
	base := New()
	base.SetFloat("a", 1)
	base.SetFloat("b", 2)
	over := New()
	over.SetFloat("b", 3)
	base.Merge(over)
	if GetOr(base, "a", 0.0) != 1 || GetOr(base, "b", 0.0) != 3 {
		t.Errorf("merged = %v", base.values)
	}
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	defaults := New()
	defaults.SetFloat("rent", 1.2)
	defaults.SetBool("start_paused", false)

	s, err := LoadOrCreate(path, defaults)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if v := GetOr(s, "rent", 0.0); v != 1.2 {
		t.Errorf("rent = %v, want 1.2", v)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("defaults not written: %v", err)
	}

	if err := os.WriteFile(path, []byte("rent: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = LoadOrCreate(path, defaults)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if v := GetOr(s, "rent", 0.0); v != 3 {
		t.Errorf("edited rent = %v, want 3", v)
	}
	if v, err := Get[bool](s, "start_paused"); err != nil || v {
		t.Errorf("start_paused = %v, %v; want default false", v, err)
	}
	if v := GetOr(defaults, "rent", 0.0); v != 1.2 {
		t.Errorf("defaults mutated: rent = %v", v)
	}
}
