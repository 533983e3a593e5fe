package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles the CLI into dir and returns the binary path.
// go test runs with the package directory as CWD, so the build happens
// two levels up, at the module root.
func buildBinary(t *testing.T, dir string) string {
	t.Helper()
	name := "fibspiral"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	bin := filepath.Join(dir, name)

	build := exec.Command("go", "build", "-o", bin, "./cmd/fibspiral")
	build.Dir = "../.."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to build fibspiral: %v", err)
	}
	return bin
}

// runBinary executes bin with NO_COLOR set, feeding stdin when non-empty,
// and returns the combined output and exit code.
func runBinary(t *testing.T, bin, stdin string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("Command did not run: %v\nOutput: %s", err, out)
	}
	return string(out), exitErr.ExitCode()
}

// TestCLI_E2E builds the binary and drives it the way a shell user would.
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	bin := buildBinary(t, tmpDir)

	cases := []struct {
		name string
		args []string
		want string // case-insensitive substring of combined output
		code int
	}{
		{"One-shot evaluation", []string{"-n", "10"}, "F(10) = 55", 0},
		{"Quiet mode", []string{"-n", "10", "--quiet"}, "55", 0},
		{"Zero index", []string{"-n", "0"}, "F(0) = 0", 0},
		{"Largest allowed index", []string{"-n", "40", "--quiet"}, "F(40)", 0},
		{"Out-of-range index", []string{"-n", "99"}, "invalid input", 3},
		{"Expired timeout", []string{"-n", "40", "--timeout", "1ns"}, "timeout", 2},
		{"Help", []string{"--help"}, "usage", 0},
		{"Version flag", []string{"--version"}, "fibspiral", 0},
		{"Bash completion", []string{"--completion", "bash"}, "_fibspiral_completions", 0},
		{"Unsupported completion shell", []string{"--completion", "tcsh"}, "unsupported shell", 4},
		{"Unknown flag", []string{"--frobnicate"}, "", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, code := runBinary(t, bin, "", tc.args...)
			if code != tc.code {
				t.Errorf("exit code %d, want %d\noutput:\n%s", code, tc.code, out)
			}
			if tc.want != "" && !strings.Contains(strings.ToLower(out), strings.ToLower(tc.want)) {
				t.Errorf("output does not contain %q:\n%s", tc.want, out)
			}
		})
	}

	t.Run("REPL session over stdin", func(t *testing.T) {
		out, code := runBinary(t, bin, "10\nchart\nexit\n", "--repl")
		if code != 0 {
			t.Fatalf("REPL exited with %d:\n%s", code, out)
		}
		for _, want := range []string{"Interactive Mode", "F(10) = 55", "Chart", "Goodbye!"} {
			if !strings.Contains(out, want) {
				t.Errorf("REPL output missing %q. Got:\n%s", want, out)
			}
		}
	})

	t.Run("Report file", func(t *testing.T) {
		reportPath := filepath.Join(tmpDir, "report.txt")
		out, code := runBinary(t, bin, "", "-n", "10", "--quiet", "-o", reportPath)
		if code != 0 {
			t.Fatalf("Run with -o exited with %d:\n%s", code, out)
		}

		content, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("Report file not written: %v", err)
		}
		for _, want := range []string{"# Fibonacci Evaluation Report", "F(10) = 55"} {
			if !strings.Contains(string(content), want) {
				t.Errorf("Report missing %q. Got:\n%s", want, content)
			}
		}
	})
}
