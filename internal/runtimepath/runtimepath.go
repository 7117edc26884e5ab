package runtimepath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/process"
)

// ErrAlreadyRunning means another live aura process holds the pid file.
var ErrAlreadyRunning = errors.New("aura is already running")

// Dir returns the runtime directory used for the instance pid file. Priority:
// 1) XDG_RUNTIME_DIR (if set)
// 2) /run/user/<uid> (if present)
// 3) /tmp/aura-runtime-<uid> (created)
func Dir() (string, error) {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir, nil
	}

	uid := os.Getuid()
	runUserDir := fmt.Sprintf("/run/user/%d", uid)
	if info, err := os.Stat(runUserDir); err == nil && info.IsDir() {
		return runUserDir, nil
	}

	tmpDir := fmt.Sprintf("/tmp/aura-runtime-%d", uid)
	if err := os.MkdirAll(tmpDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return tmpDir, nil
}

// PIDFilePath returns the overlay's pid file path.
func PIDFilePath() (string, error) {
	runtimeDir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(runtimeDir, "aura.pid"), nil
}

// AcquirePIDFile claims path for the current process. A file left behind by
// a process that no longer exists is taken over. The returned release
// removes the file.
func AcquirePIDFile(path string) (release func(), err error) {
	self := os.Getpid()
	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			_, werr := f.WriteString(strconv.Itoa(self) + "\n")
			cerr := f.Close()
			if werr != nil || cerr != nil {
				os.Remove(path)
				return nil, fmt.Errorf("write pid file: %w", errors.Join(werr, cerr))
			}
			return func() { releasePIDFile(path, self) }, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create pid file: %w", err)
		}

		owner, ok := readPID(path)
		if ok && owner != self {
			if alive, _ := process.PidExists(int32(owner)); alive {
				return nil, fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, owner)
			}
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("remove stale pid file: %w", err)
		}
	}
	return nil, fmt.Errorf("create pid file: %s keeps reappearing", path)
}

func readPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// releasePIDFile only removes the file if it still names pid.
func releasePIDFile(path string, pid int) {
	if owner, ok := readPID(path); ok && owner == pid {
		os.Remove(path)
	}
}
