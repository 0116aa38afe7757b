package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.FPS != def.FPS || cfg.Capacity != def.Capacity || cfg.Visualizer != def.Visualizer {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Seed == 0 {
		t.Fatal("expected a clock seed")
	}
}

func TestParseFlagsAndImport(t *testing.T) {
	cfg, err := Parse([]string{"-fps", "30", "-seed", "9", "-viz", "glyph", "scope.wav"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FPS != 30 || cfg.Seed != 9 || cfg.Visualizer != "glyph" || cfg.Import != "scope.wav" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse([]string{"-fps", "0", "-capacity", "-1"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"fps", "capacity"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in error, got %v", want, err)
		}
	}
}

func TestParseRejectsExtraArgs(t *testing.T) {
	if _, err := Parse([]string{"a.wav", "b.wav"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for two files")
	}
}

func TestParseHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Parse([]string{"-h"}, &out)
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "usage: milkyway") {
		t.Fatalf("expected usage text, got %q", out.String())
	}
}

func TestParseImportPoints(t *testing.T) {
	cfg, err := Parse([]string{"-points", "512"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Points != 512 {
		t.Fatalf("expected 512 import points, got %d", cfg.Points)
	}
	if Default().Points > MaxPoints {
		t.Fatalf("default points %d above the %d limit", Default().Points, MaxPoints)
	}
}

func TestParseRejectsBadPoints(t *testing.T) {
	tests := [][]string{
		{"-points", "0"},
		{"-points", "100000"},
		{"-capacity", "100", "-points", "200"},
	}
	for _, args := range tests {
		_, err := Parse(args, &bytes.Buffer{})
		if err == nil || !strings.Contains(err.Error(), "points") {
			t.Fatalf("Parse(%q): expected points error, got %v", args, err)
		}
	}
}
