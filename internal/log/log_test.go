package log

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		verbose   bool
		wantDebug bool
	}{
		{false, false},
		{true, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := New(zapcore.AddSync(&buf), tt.verbose)
		l.Debug("debug entry", zap.String("capability", "foo"))
		l.Info("info entry")
		l.Sync()

		out := buf.String()
		if got := strings.Contains(out, "debug entry"); got != tt.wantDebug {
			t.Errorf("verbose=%v: debug written = %v, want %v\n%s", tt.verbose, got, tt.wantDebug, out)
		}
		if !strings.Contains(out, "info entry") {
			t.Errorf("verbose=%v: info entry missing\n%s", tt.verbose, out)
		}
		if tt.verbose && !strings.Contains(out, `"capability": "foo"`) {
			t.Errorf("fields missing from output\n%s", out)
		}
	}
}
