package taskplot

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/taskplot/internal/appconfig"
)

// TestRootCmd verifies that running the root command with an invalid subcommand reports an error.
func TestRootCmd(t *testing.T) {
	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"nonexistent"})
	if _, err := rootCmd.ExecuteC(); err == nil {
		t.Error("Expected an error for a nonexistent command, but got none")
	}

	expected := "unknown command \"nonexistent\" for \"taskplot\""
	if !strings.Contains(b.String(), expected) {
		t.Errorf("Expected output to contain '%s', but got '%s'", expected, b.String())
	}
}

func TestPlotCmdRequiresFiles(t *testing.T) {
	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"plot", "--config", filepath.Join(t.TempDir(), "none.json"), "speed"})
	if _, err := rootCmd.ExecuteC(); err == nil {
		t.Fatal("expected an error when no result files are given")
	}
	if !strings.Contains(b.String(), "Usage:") {
		t.Fatalf("expected usage output, got %s", b.String())
	}
}

func TestPrintOrdering(t *testing.T) {
	var buf bytes.Buffer
	printOrdering(&buf, "speed", []string{"t2", "t1"})
	out := buf.String()
	for _, want := range []string{"speed", "0", "t2", "1", "t1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %s", want, out)
		}
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
}

func TestRunListCommands(t *testing.T) {
	var buf bytes.Buffer
	runListCommands(&buf, rootCmd)
	out := buf.String()
	for _, want := range []string{"taskplot plot", "taskplot browse", "taskplot list kinds", "taskplot show config"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in command list, got:\n%s", want, out)
		}
	}
}

func TestRunListKinds(t *testing.T) {
	var buf bytes.Buffer
	runListKinds(&buf)
	out := buf.String()
	for _, want := range []string{"speed", "likelihood", "probability", "total-speed", "iteration-speed", "reciprocal", "scatter"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in kinds list, got:\n%s", want, out)
		}
	}
}

func TestRunShowConfig(t *testing.T) {
	var buf bytes.Buffer
	runShowConfig(&buf, appconfig.Config{Format: "svg", Priority: "first-wins"})
	out := buf.String()
	for _, want := range []string{"No config file loaded", "Format:         svg", "Priority:       first-wins", "4x5 in"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

// TestBrowseModel drives the interactive table with key and window messages.
func TestBrowseModel(t *testing.T) {
	_, args := scenarioArgs(t, "speed")
	l, err := buildLayout(appconfig.Config{}, "", args)
	if err != nil {
		t.Fatal(err)
	}
	m := newBrowseModel(l)
	if m.Init() != nil {
		t.Fatal("expected no initial command")
	}

	view := m.View()
	for _, want := range []string{"speed", "t2", "t1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}

	newModel, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = newModel.(*browseModel)
	if m.width != 80 || m.height != 30 {
		t.Fatalf("expected 80x30, got %dx%d", m.width, m.height)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}
