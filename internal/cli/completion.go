package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "file", "shell")
	IsFile    bool     // true if the flag takes a file path
	IsCounter bool     // true if values come from the counter list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "input", Short: "i", Help: "Instruction file", IsFile: true, ValueName: "file"},
	{Long: "count", Help: "Counters to run", IsCounter: true, ValueName: "counter"},
	{Long: "config", Help: "YAML settings file", IsFile: true, ValueName: "file"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-file", Help: "Prometheus textfile path", IsFile: true, ValueName: "file"},
	{Long: "log-format", Help: "Diagnostic log format", Values: []string{"console", "json"}, ValueName: "format"},
	{Long: "quiet", Short: "q", Help: "Print only the counts"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "trace", Help: "Print every instruction"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "repl", Help: "Start an interactive session"},
	{Long: "tui", Help: "Replay the run full-screen"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish").
//   - counters: List of available counter names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, counters []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, counters)
	case "zsh":
		return generateZshCompletion(out, counters)
	case "fish":
		return generateFishCompletion(out, counters)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, counters []string) error {
	var opts, filePatterns []string
	var caseBody strings.Builder
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
		switch {
		case f.IsFile:
			filePatterns = append(filePatterns, "--"+f.Long)
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		case f.IsCounter:
			writeBashCase(&caseBody, "--"+f.Long, `COMPREPLY=( $(compgen -W "${counters}" -- "${cur}") )`)
		case len(f.Values) > 0:
			writeBashCase(&caseBody, "--"+f.Long,
				fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")))
		}
	}
	writeBashCase(&caseBody, strings.Join(filePatterns, "|"), `COMPREPLY=( $(compgen -f -- "${cur}") )`)

	script := fmt.Sprintf(`# Bash completion script for dialsim
# Add this to your ~/.bashrc or ~/.bash_completion

_dialsim_completions() {
    local cur prev opts counters
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    counters="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _dialsim_completions dialsim
`, strings.Join(opts, " "), strings.Join(counters, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func writeBashCase(b *strings.Builder, pattern, body string) {
	fmt.Fprintf(b, "        %s)\n            %s\n            return 0\n            ;;\n", pattern, body)
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, counters []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef dialsim

# Zsh completion script for dialsim
# Add this to your ~/.zshrc or place in $fpath

_dialsim() {
    local -a counters
    counters=(%s all)

    _arguments -s \
%s
}

_dialsim "$@"
`, strings.Join(counters, " "), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsCounter:
		valueSuffix = fmt.Sprintf(":%s:($counters)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, counters []string) error {
	lines := []string{
		"# Fish completion script for dialsim",
		"# Add this to ~/.config/fish/completions/dialsim.fish",
		"",
		"# Disable file completion by default",
		"complete -c dialsim -f",
		"",
	}
	counterList := strings.Join(counters, " ")
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, counterList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, counterList string) string {
	parts := []string{"complete -c dialsim"}
	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsCounter:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", counterList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	}
	return strings.Join(parts, " ")
}
