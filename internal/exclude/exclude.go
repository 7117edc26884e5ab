// Package exclude decides which windows belong to the desktop shell and must
// never be outlined.
package exclude

import (
	"strings"

	"github.com/1broseidon/aura/internal/config"
)

// SystemUI is the process-name sentinel for a shell surface.
const SystemUI = "SystemUI"

// Rules holds the class blacklist, process blacklist and file-manager gates.
// It is immutable after construction.
type Rules struct {
	classes      map[string]bool
	processes    map[string]bool
	fileManagers map[string]map[string]bool
}

// New builds rules from the configuration lists.
func New(cfg *config.Config) *Rules {
	r := &Rules{
		classes:      make(map[string]bool, len(cfg.IgnoreClasses)),
		processes:    make(map[string]bool, len(cfg.IgnoreProcesses)),
		fileManagers: make(map[string]map[string]bool, len(cfg.FileManagers)),
	}
	for _, class := range cfg.IgnoreClasses {
		r.classes[class] = true
	}
	for _, name := range cfg.IgnoreProcesses {
		r.processes[strings.ToLower(name)] = true
	}
	for _, fm := range cfg.FileManagers {
		exe := strings.ToLower(fm.Executable)
		set := r.fileManagers[exe]
		if set == nil {
			set = make(map[string]bool, len(fm.Classes))
			r.fileManagers[exe] = set
		}
		for _, class := range fm.Classes {
			set[class] = true
		}
	}
	return r
}

// IgnoredClass reports whether a window class is a shell surface.
// Class names compare exactly.
func (r *Rules) IgnoredClass(class string) bool {
	return r.classes[class]
}

// IgnoredProcess reports whether a process name is blacklisted or is the
// SystemUI sentinel. Names compare case-insensitively.
func (r *Rules) IgnoredProcess(name string) bool {
	if name == SystemUI {
		return true
	}
	return r.processes[strings.ToLower(name)]
}

// ResolveProcessName applies the file-manager gate: a file-manager executable
// owning a window whose class is not one of its browser classes is the shell
// sharing that executable, and resolves to SystemUI.
func (r *Rules) ResolveProcessName(name, class string) string {
	classes, ok := r.fileManagers[strings.ToLower(name)]
	if !ok {
		return name
	}
	if classes[class] {
		return name
	}
	return SystemUI
}

// Suppressed reports whether a window with this owner name and class must not
// be drawn.
func (r *Rules) Suppressed(name, class string) bool {
	return r.IgnoredProcess(name) || r.IgnoredClass(class)
}
