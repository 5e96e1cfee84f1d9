package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	tests := []struct {
		name       string
		info       *debug.BuildInfo
		ok         bool
		wantVer    string
		wantCommit string
	}{
		{"unavailable", nil, false, "dev", "none"},
		{"devel build", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true, "dev", "none"},
		{
			name: "installed",
			info: &debug.BuildInfo{
				Main:     debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
			},
			ok:         true,
			wantVer:    "v0.3.1",
			wantCommit: "abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldV, oldC, oldD := Version, Commit, Date
			t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
			Version, Commit, Date = "dev", "none", "unknown"

			fillFromBuildInfo(tt.info, tt.ok)
			if Version != tt.wantVer || Commit != tt.wantCommit {
				t.Errorf("got %s/%s, want %s/%s", Version, Commit, tt.wantVer, tt.wantCommit)
			}
		})
	}
}

func TestLdflagsWin(t *testing.T) {
	oldV := Version
	t.Cleanup(func() { Version = oldV })
	Version = "v1.0.0"

	fillFromBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}}, true)
	if Version != "v1.0.0" {
		t.Errorf("Version = %s, ldflags value should be kept", Version)
	}
}

func TestTemplate(t *testing.T) {
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version: ") || !strings.HasSuffix(got, "\n") {
		t.Errorf("Template() = %q", got)
	}
}
