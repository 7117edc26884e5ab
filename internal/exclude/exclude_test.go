package exclude

import (
	"testing"

	"github.com/1broseidon/aura/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRules_IgnoredClassIsExact(t *testing.T) {
	r := New(config.DefaultConfig())

	assert.True(t, r.IgnoredClass("Shell_TrayWnd"))
	assert.True(t, r.IgnoredClass("Progman"))
	assert.False(t, r.IgnoredClass("shell_traywnd"))
	assert.False(t, r.IgnoredClass("Firefox"))
}

func TestRules_IgnoredProcessIgnoresCase(t *testing.T) {
	r := New(config.DefaultConfig())

	assert.True(t, r.IgnoredProcess("SearchHost.exe"))
	assert.True(t, r.IgnoredProcess("searchhost.EXE"))
	assert.True(t, r.IgnoredProcess(SystemUI))
	assert.False(t, r.IgnoredProcess("firefox"))
}

func TestRules_ResolveProcessName(t *testing.T) {
	r := New(config.DefaultConfig())

	tests := []struct {
		name, exe, class, want string
	}{
		{"explorer browser window", "explorer.exe", "CabinetWClass", "explorer.exe"},
		{"explorer desktop host", "explorer.exe", "DesktopWindow", SystemUI},
		{"explorer case-insensitive", "Explorer.EXE", "Progman", SystemUI},
		{"nautilus browser", "nautilus", "org.gnome.Nautilus", "nautilus"},
		{"nautilus desktop", "nautilus", "nautilus-desktop", SystemUI},
		{"other app untouched", "firefox", "Navigator", "firefox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveProcessName(tt.exe, tt.class))
		})
	}
}

func TestRules_Suppressed(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.IgnoreClasses = []string{"Polybar"}
	cfg.IgnoreProcesses = []string{"rofi"}
	r := New(cfg)

	assert.True(t, r.Suppressed("polybar", "Polybar"))
	assert.True(t, r.Suppressed("Rofi", "Rofi"))
	assert.True(t, r.Suppressed(SystemUI, "anything"))
	assert.False(t, r.Suppressed("code", "Code"))
}
