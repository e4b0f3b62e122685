package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/mondrian/pkg/buildinfo"
)

// newTestCLI returns a CLI with isolated config and cache directories that
// writes command output to the returned buffer.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.In = strings.NewReader("")
	c.Out = &out
	return c, &out
}

func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetOut(c.Out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()

	want := []string{"generate", "tree", "palette", "config", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootWithoutTerminalPrintsHelp(t *testing.T) {
	c, out := newTestCLI(t)
	if err := execute(t, c); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out.String(), "generate") {
		t.Errorf("expected help output, got %q", out.String())
	}
}

func TestRootVersion(t *testing.T) {
	c, out := newTestCLI(t)
	if err := execute(t, c, "--version"); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out.String(), buildinfo.Version) {
		t.Errorf("version output = %q", out.String())
	}
}

func TestCompletion(t *testing.T) {
	c, out := newTestCLI(t)
	if err := execute(t, c, "completion", "bash"); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out.String(), "mondrian") {
		t.Error("bash completion should mention the command name")
	}
	if err := execute(t, c, "completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}
