package runtimepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestDir_UsesXDGRuntimeDirWhenSet(t *testing.T) {
	td := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", td)

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if got != td {
		t.Fatalf("Dir() = %q, want %q", got, td)
	}
}

func TestDir_FallbacksWhenXDGRuntimeDirMissing(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")

	got, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}

	wantRun := fmt.Sprintf("/run/user/%d", os.Getuid())
	wantTmp := fmt.Sprintf("/tmp/aura-runtime-%d", os.Getuid())
	if got != wantRun && got != wantTmp {
		t.Fatalf("Dir() = %q, want %q or %q", got, wantRun, wantTmp)
	}
}

func TestPIDFilePath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	path, err := PIDFilePath()
	if err != nil {
		t.Fatalf("PIDFilePath() error: %v", err)
	}
	if !strings.HasSuffix(path, "/aura.pid") {
		t.Fatalf("PIDFilePath() = %q, missing suffix", path)
	}
}

func TestAcquirePIDFile_WritesAndReleases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aura.pid")

	release, err := AcquirePIDFile(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != strconv.Itoa(os.Getpid()) {
		t.Fatalf("pid file = %q, want own pid", data)
	}

	release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected pid file removed, stat err = %v", err)
	}
}

func TestAcquirePIDFile_RefusesLiveOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aura.pid")
	// The parent of the test binary is alive for the duration of the test.
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getppid())), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := AcquirePIDFile(path)
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestAcquirePIDFile_TakesOverStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aura.pid")
	if err := os.WriteFile(path, []byte("not-a-pid\n"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	release, err := AcquirePIDFile(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()
}
