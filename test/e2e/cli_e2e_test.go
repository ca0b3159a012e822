package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/dialsim into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "dialsim"
	if runtime.GOOS == "windows" {
		binName = "dialsim.exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs with the package directory as CWD.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/dialsim")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build dialsim: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)

	example, err := filepath.Abs(filepath.Join("testdata", "example.txt"))
	if err != nil {
		t.Fatal(err)
	}
	malformed, err := filepath.Abs(filepath.Join("testdata", "malformed.txt"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Quiet Mode",
			args:     []string{"-i", example, "--quiet"},
			wantOut:  "3\n6",
			wantCode: 0,
		},
		{
			name:     "Default Run",
			args:     []string{"-i", example},
			wantOut:  "Zero crossings:",
			wantCode: 0,
		},
		{
			name:     "All Counters Comparison",
			args:     []string{"-i", example, "--count", "all"},
			wantOut:  "All counters are consistent",
			wantCode: 0,
		},
		{
			name:     "Trace",
			args:     []string{"-i", example, "--trace"},
			wantOut:  "--- Trace ---",
			wantCode: 0,
		},
		{
			name:     "Standard Input",
			args:     []string{"-i", "-", "-q", "--count", "landings"},
			stdin:    "L50\nR100\nL1\n",
			wantOut:  "2",
			wantCode: 0,
		},
		{
			name:     "All Counters On Huge Distance",
			args:     []string{"-i", "-", "-q", "--count", "all"},
			stdin:    "R9223372036854775807\n",
			wantOut:  "92233720368547758",
			wantCode: 0,
		},
		{
			name:     "Malformed Input",
			args:     []string{"-i", malformed},
			wantOut:  "line 3",
			wantCode: 5,
		},
		{
			name:     "Missing Input",
			args:     []string{"-i", filepath.Join(t.TempDir(), "absent.txt")},
			wantOut:  "absent.txt",
			wantCode: 5,
		},
		{
			name:     "Unknown Counter",
			args:     []string{"-i", example, "--count", "abacus"},
			wantOut:  "abacus",
			wantCode: 4,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "dialsim",
			wantCode: 0,
		},
		{
			name:     "JSON Logs",
			args:     []string{"-i", example, "-q", "-v", "--log-format", "json"},
			wantOut:  `"component":"dialsim"`,
			wantCode: 0,
		},
		{
			name:     "Unknown Log Format",
			args:     []string{"-i", example, "--log-format", "xml"},
			wantOut:  "log-format",
			wantCode: 4,
		},
		{
			name:     "Bash Completion",
			args:     []string{"--completion", "bash"},
			wantOut:  "complete -F",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("Command did not run: %v", err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
				}
			}
		})
	}
}

// TestCLI_E2E_ResultFile checks the --output file written for a run.
func TestCLI_E2E_ResultFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "moves.txt")
	if err := os.WriteFile(input, []byte("L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	resultPath := filepath.Join(dir, "result.txt")

	cmd := exec.Command(binPath, "-i", input, "-o", resultPath, "-q")
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(resultPath)
	if err != nil {
		t.Fatalf("result file not written: %v", err)
	}
	for _, want := range []string{"landings = 3", "crossings = 6"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("result file missing %q:\n%s", want, data)
		}
	}
}
