// Package tui provides terminal user interface components and callbacks for featsweep.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleCommand = lipgloss.NewStyle().Bold(true)
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func init() {
	// Piped output (CI logs, shell pipelines) gets plain text so the
	// echoed command lines stay copy-pasteable.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		plain := lipgloss.NewStyle()
		styleTitle = plain
		styleCommand = plain
		styleErr = plain
		styleSuccess = plain
		styleWarn = plain
		styleDim = plain
	}
}

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) { fmt.Println(styleDim.Render(msg)) }

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// PrintCommand echoes a fully-quoted command line in bold, before the
// command runs, so the operator sees exactly what is being tested.
func PrintCommand(line string) { fmt.Println(styleCommand.Render(line)) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintHelp displays usage information for featsweep commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("featsweep"))
	fmt.Println("Verify a cargo package against each feature flag of a group, one at a time")
	fmt.Println("\nCommands:")
	fmt.Println("  init                Create featsweep.yml (interactive wizard)")
	fmt.Println("    --yes, -y         Accept defaults without prompting")
	fmt.Println("  check [options] [-- args...]")
	fmt.Println("                      Run the verification tool once per flag, fail-fast")
	fmt.Println("    --package <name>  Override the configured package name")
	fmt.Println("    --group <name>    Override the configured feature-group key")
	fmt.Println("    --baseline <a,b>  Override the baseline flags (comma-separated)")
	fmt.Println("    --offline         Read the flag group from Cargo.toml, not cargo metadata")
	fmt.Println("    --quiet, -q       Capture tool output, show progress; replay output on failure")
	fmt.Println("    --json            Emit a structured JSON report")
	fmt.Println("    --verbose, -v     Echo provider invocations")
	fmt.Println("    -- <args...>      Forward everything after -- to every invocation")
	fmt.Println("  list [options]      Resolve and print the flag group without running anything")
	fmt.Println("    --offline, --json As for check")
	fmt.Println("  watch [-- args...]  Re-run the sweep when featsweep.yml or Cargo.toml changes")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish/powershell)")
	fmt.Println("\nExamples:")
	fmt.Println("  featsweep init")
	fmt.Println("  featsweep check")
	fmt.Println("  featsweep check -- --fix")
	fmt.Println("  featsweep check --baseline async-io -- --all-targets")
	fmt.Println("  featsweep check --offline --quiet")
	fmt.Println("  featsweep list --json")
	fmt.Println("  featsweep watch")
	fmt.Println("  featsweep completion bash > /etc/bash_completion.d/featsweep")
}
