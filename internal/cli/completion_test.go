package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	counters := []string{"crossings", "landings", "stepwise"}
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _dialsim_completions dialsim", `counters="crossings landings stepwise all"`, "--metrics-file", "--input|-i"}},
		{"zsh", []string{"#compdef dialsim", "counters=(crossings landings stepwise all)", "'--count[Counters to run]:counter:($counters)'"}},
		{"fish", []string{"complete -c dialsim -f", "-l count -d 'Counters to run' -xa 'crossings landings stepwise all'", "-s i -l input"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, counters); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletionUnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "powershell", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unsupported shell")
	}
}
