package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/suzuki-shunsuke/diff-findings/pkg/log"
)

func TestNew(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logE := log.New(buf, "v1.0.0")
	logE.Info("hello")
	logE.Debug("hidden")
	output := buf.String()
	for _, want := range []string{"hello", "program=diff-findings", "program_version=v1.0.0"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q: %s", want, output)
		}
	}
	if strings.Contains(output, "hidden") {
		t.Errorf("debug logs should be hidden by default: %s", output)
	}
}
