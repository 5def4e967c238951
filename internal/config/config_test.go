// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/radix"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Fatalf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_file(t *testing.T) {
	p := writeFile(t, "radix.yaml", "base: 16\nformat: TEXT\nverify: true\nlog_level: debug\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Base: 16, Format: FormatText, Indent: true, Verify: true, LogLevel: "debug"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("RADIX_BASE", "7")
	t.Setenv("RADIX_FORMAT", "msgpack")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Base != 7 || cfg.Format != FormatMsgpack {
		t.Fatalf("got base %d format %q, want 7 msgpack", cfg.Base, cfg.Format)
	}
}

func TestLoad_errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: no error")
	}
	p := writeFile(t, "bad.yaml", "base: 1\n")
	if _, err := Load(p); !errors.Is(err, radix.ErrInvalidBase) {
		t.Errorf("base 1: got %v, want %v", err, radix.ErrInvalidBase)
	}
	p = writeFile(t, "bad.toml", "format = \"xml\"\n")
	if _, err := Load(p); err == nil {
		t.Error("format xml: no error")
	}
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.LogLevel = "verbose"
	if err := c.Validate(); err == nil {
		t.Error("log level verbose: no error")
	}
}
