package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, exit, _ := parseFlags([]string{})
	if exit {
		t.Fatal("unexpected exit")
	}
	if cfg.file != "" {
		t.Errorf("file = %q, want empty", cfg.file)
	}
	if cfg.kind != "auto" {
		t.Errorf("kind = %q, want auto", cfg.kind)
	}
	if cfg.permissive {
		t.Error("permissive should default to false")
	}
	if cfg.logLevel != "info" {
		t.Errorf("logLevel = %q, want info", cfg.logLevel)
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-file", "block.rlp",
		"-kind", "block",
		"-permissive",
		"-loglevel", "debug",
	}
	cfg, exit, _ := parseFlags(args)
	if exit {
		t.Fatal("unexpected exit")
	}
	if cfg.file != "block.rlp" {
		t.Errorf("file = %q, want block.rlp", cfg.file)
	}
	if cfg.kind != "block" {
		t.Errorf("kind = %q, want block", cfg.kind)
	}
	if !cfg.permissive {
		t.Error("permissive should be true")
	}
	if cfg.logLevel != "debug" {
		t.Errorf("logLevel = %q, want debug", cfg.logLevel)
	}
}

func TestParseFlags_Version(t *testing.T) {
	cfg, exit, code := parseFlags([]string{"-version"})
	if exit {
		t.Fatal("unexpected exit for -version")
	}
	if !cfg.showVersion {
		t.Error("showVersion should be true")
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}

func TestParseFlags_InvalidFlag(t *testing.T) {
	_, exit, code := parseFlags([]string{"-unknown-flag"})
	if !exit {
		t.Fatal("expected exit for unknown flag")
	}
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRun_MissingFile(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	code := run([]string{}, w)
	w.Close()
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
}

func TestRun_DecodesTransaction(t *testing.T) {
	// A bare legacy RLP list with 9 string fields, all empty/zero, is a
	// valid (if degenerate) legacy transaction.
	raw := []byte{0xc9, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}
	dir := t.TempDir()
	path := filepath.Join(dir, "tx.rlp")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	code := run([]string{"-file", path, "-kind", "tx"}, w)
	w.Close()
	if code != 0 {
		t.Fatalf("code = %d, want 0", code)
	}

	buf := make([]byte, 256)
	n, _ := r.Read(buf)
	out := string(buf[:n])
	if out == "" {
		t.Fatal("expected output describing the decoded transaction")
	}
}

func TestRun_UnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.rlp")
	if err := os.WriteFile(path, []byte{0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	code := run([]string{"-file", path, "-kind", "nonsense"}, w)
	w.Close()
	if code != 1 {
		t.Errorf("code = %d, want 1", code)
	}
}
