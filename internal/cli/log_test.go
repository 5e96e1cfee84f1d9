package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("sheet built", "pages", 1) }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("grid", "rows", 10, "cols", 4) }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("grid", "rows", 10, "cols", 4) }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("tiles do not fit the work area") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("sheet built", "tiles", 40)

	out := buf.String()
	for _, want := range []string{"sheet built", "tiles=40"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("Generated 40 tiles on 1 page(s)")

	out := buf.String()
	if !strings.Contains(out, "Generated 40 tiles on 1 page(s) (") {
		t.Errorf("progress line %q missing message and duration", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext without a logger should fall back to log.Default()")
	}
}
