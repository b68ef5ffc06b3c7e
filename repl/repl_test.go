package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/lumen/environment"
)

func newTestRepl() *Repl {
	return New("BANNER", "v0.0.0-test", "tester", "----", "MIT", "lumen >>> ")
}

func TestPrintBannerIncludesConfiguredFields(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()
	r.printBanner(&buf)

	out := buf.String()
	for _, want := range []string{"BANNER", "v0.0.0-test", "tester", "MIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected banner output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestExecuteWithRecoveryPrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()
	env := environment.New()

	r.executeWithRecovery(&buf, "let a = 5; a + 1;", env)

	if !strings.Contains(buf.String(), "6") {
		t.Errorf("expected output to contain %q, got %q", "6", buf.String())
	}
}

func TestExecuteWithRecoveryPersistsBindingsAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()
	env := environment.New()

	r.executeWithRecovery(&buf, "let x = 10;", env)
	buf.Reset()
	r.executeWithRecovery(&buf, "x * 2;", env)

	if !strings.Contains(buf.String(), "20") {
		t.Errorf("expected output to contain %q, got %q", "20", buf.String())
	}
}

func TestExecuteWithRecoveryReportsParseError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()
	env := environment.New()

	r.executeWithRecovery(&buf, "let x 5;", env)

	if buf.Len() == 0 {
		t.Fatal("expected an error message to be printed, got none")
	}
}

func TestExecuteWithRecoveryReportsEvalError(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()
	env := environment.New()

	r.executeWithRecovery(&buf, "true + false;", env)

	if !strings.Contains(buf.String(), "unknown operator") {
		t.Errorf("expected unknown-operator message, got %q", buf.String())
	}
}

func TestExecuteWithRecoveryRecoversFromPanic(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRepl()
	env := environment.New()

	r.executeWithRecovery(&buf, "5 / 0;", env)

	if !strings.Contains(buf.String(), "RUNTIME ERROR") {
		t.Errorf("expected a recovered runtime error message, got %q", buf.String())
	}
}
