package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != Mode2D {
		t.Errorf("expected mode 2d, got %s", cfg.Mode)
	}
	if cfg.Level != "beginner" {
		t.Errorf("expected level beginner, got %s", cfg.Level)
	}
	if cfg.Rule != "" {
		t.Errorf("expected empty rule, got %s", cfg.Rule)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if cfg.Ambient.MicroSeedEvery != 300 || cfg.Ambient.MinLive != 60 {
		t.Errorf("unexpected ambient defaults: %+v", cfg.Ambient)
	}
}

func TestGetLevel(t *testing.T) {
	lv, ok := GetLevel(Mode2D, "advanced")
	if !ok {
		t.Fatal("expected advanced level")
	}
	if lv.Rows != 60 || lv.Cols != 60 || !lv.Wrap || lv.StepsPerSecond != 14 {
		t.Errorf("unexpected advanced level: %+v", lv)
	}

	lv, ok = GetLevel(Mode3D, "beginner")
	if !ok || lv.Size <= 0 {
		t.Errorf("unexpected 3d beginner level: %+v", lv)
	}

	if _, ok := GetLevel(Mode2D, "expert"); ok {
		t.Error("expected no expert level")
	}
	if _, ok := GetLevel("4d", "beginner"); ok {
		t.Error("expected no 4d levels")
	}
}

func TestListLevels(t *testing.T) {
	levels := ListLevels(Mode3D)
	if len(levels) != 3 || levels[0] != "beginner" || levels[2] != "advanced" {
		t.Errorf("unexpected order: %v", levels)
	}
	if ListLevels("nonexistent") != nil {
		t.Error("expected nil for unknown mode")
	}
}

func TestResolveRule(t *testing.T) {
	tests := []struct {
		mode, in, want string
	}{
		{Mode2D, "", "B3/S23"},
		{Mode3D, "", "B5/S4,5"},
		{Mode2D, "highlife", "B36/S23"},
		{Mode2D, "B2/S34", "B2/S34"},
		{Mode3D, "garbage", "garbage"},
	}

	for _, tt := range tests {
		if got := ResolveRule(tt.mode, tt.in); got != tt.want {
			t.Errorf("ResolveRule(%s, %q) = %q, want %q", tt.mode, tt.in, got, tt.want)
		}
	}

	for _, mode := range []string{Mode2D, Mode3D} {
		for _, name := range ListRules(mode) {
			if Rules[name].Mode != mode {
				t.Errorf("rule %s listed under %s", name, mode)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	bad := 1.5
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"mode", func(c *Config) { c.Mode = "4d" }, ErrUnknownMode},
		{"level", func(c *Config) { c.Level = "expert" }, ErrUnknownLevel},
		{"speed", func(c *Config) { c.Speed = -1 }, ErrInvalidSpeed},
		{"density", func(c *Config) { c.Density = &bad }, ErrInvalidDensity},
		{"ambient", func(c *Config) { c.Ambient.CellSize = 0 }, ErrInvalidAmbient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "intermediate"
	cfg.Rule = "seeds"
	s, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if s.StepsPerSecond != 8 || s.Density != 0.24 || s.RuleSpec != "B2/S" {
		t.Errorf("unexpected settings: %+v", s)
	}

	zero := 0.0
	cfg.Speed = 30
	cfg.Density = &zero
	s, err = cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if s.StepsPerSecond != 30 || s.Density != 0 {
		t.Errorf("overrides not applied: %+v", s)
	}
}

func TestLoadAndEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifesim.yaml")
	data := []byte("mode: 3D\nlevel: advanced\nrule: crystal\nseed: 7\nambient:\n  base_interval: 250ms\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Mode != Mode3D || cfg.Level != "advanced" || cfg.Seed != 7 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Ambient.BaseInterval != 250*time.Millisecond {
		t.Errorf("base interval = %v", cfg.Ambient.BaseInterval)
	}
	if cfg.Ambient.MinLive != 60 || cfg.Generations != DefaultGenerations {
		t.Error("defaults not kept for missing keys")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	back, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if back.Rule != "crystal" || back.Ambient.BaseInterval != 250*time.Millisecond {
		t.Errorf("round trip lost values: %+v", back)
	}
}

func TestParseModeOnlyUsesModeRule(t *testing.T) {
	tests := []struct {
		data, want string
	}{
		{"mode: 3d\n", "B5/S4,5"},
		{"mode: 2d\n", "B3/S23"},
		{"level: advanced\n", "B3/S23"},
		{"mode: 3d\nrule: conway\n", "B3/S23"},
	}

	for _, tt := range tests {
		cfg, err := Parse([]byte(tt.data))
		if err != nil {
			t.Fatalf("parse %q failed: %v", tt.data, err)
		}
		s, err := cfg.Resolve()
		if err != nil {
			t.Fatalf("resolve %q failed: %v", tt.data, err)
		}
		if s.RuleSpec != tt.want {
			t.Errorf("Parse(%q) rule = %s, want %s", tt.data, s.RuleSpec, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
