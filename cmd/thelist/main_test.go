package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWriteConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("THELIST_CONFIG", path)

	if code := run([]string{"--write-config", "--api", "http://backend.internal:3001"}); code != 0 {
		t.Fatalf("run exit = %d, want 0", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if got := string(data); !strings.Contains(got, "http://backend.internal:3001") {
		t.Fatalf("config missing base url:\n%s", got)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 2 {
		t.Fatalf("run exit = %d, want 2", code)
	}
}

func TestFailuresGoToStderr(t *testing.T) {
	var buf bytes.Buffer
	stderr = &buf
	t.Cleanup(func() { stderr = os.Stderr })

	if code := fail("error", errors.New("program crashed")); code != 1 {
		t.Fatalf("fail exit = %d, want 1", code)
	}
	if got := buf.String(); got != "error: program crashed\n" {
		t.Fatalf("stderr = %q", got)
	}

	buf.Reset()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nbase_url ="), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("THELIST_CONFIG", path)
	if code := run(nil); code != 1 {
		t.Fatalf("run exit = %d, want 1", code)
	}
	if !strings.HasPrefix(buf.String(), "config: read config") {
		t.Fatalf("stderr = %q", buf.String())
	}
}
