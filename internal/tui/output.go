// Package tui provides terminal output and callbacks for repro-verify.
package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/EmundoT/repro-verify/internal/core"
	"github.com/EmundoT/repro-verify/internal/types"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	styleErr     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewCallback returns the interactive callback when stdout is a terminal and
// normal output with prompts was requested, the non-interactive one otherwise.
func NewCallback(flags core.NonInteractiveFlags) core.UICallback {
	if flags.Yes || flags.Mode != core.OutputNormal || !IsTerminal() {
		return NewNonInteractiveTUICallback(flags)
	}
	return NewTUICallback()
}

// PrintError displays an error message with styling to the terminal.
func PrintError(title, msg string) { fmt.Println(styleErr.Render("✖ " + title)); fmt.Println(msg) }

// PrintSuccess displays a success message with styling to the terminal.
func PrintSuccess(msg string) { fmt.Println(styleSuccess.Render("✔ " + msg)) }

// PrintInfo displays an informational message to the terminal.
func PrintInfo(msg string) { fmt.Println(styleDim.Render(msg)) }

// PrintWarning displays a warning message with styling to the terminal.
func PrintWarning(title, msg string) { fmt.Println(styleWarn.Render("! " + title)); fmt.Println(msg) }

// StyleTitle applies title styling to the given text string.
func StyleTitle(text string) string { return styleTitle.Render(text) }

// PrintSummary writes the per-artifact table and totals of a run.
func PrintSummary(w io.Writer, summary *types.VerifySummary) {
	for _, a := range summary.Artifacts {
		var symbol, status string
		switch a.Status {
		case types.ArtifactStatusVerified:
			symbol = styleSuccess.Render("✓")
			status = "[OK]"
		case types.ArtifactStatusNotVerified:
			symbol = styleErr.Render("✗")
			status = "[NOT VERIFIED]"
		default:
			symbol = styleDim.Render("-")
			status = "[SKIPPED]"
		}
		_, _ = fmt.Fprintf(w, "%s %-60s %s\n", symbol, a.File, status)
		if a.Error != "" {
			_, _ = fmt.Fprintln(w, styleDim.Render("    "+firstLine(a.Error)))
		}
	}
	for _, pkg := range summary.MissingPackages {
		_, _ = fmt.Fprintf(w, "%s %-60s %s\n", styleErr.Render("✗"), pkg, "[NO APK]")
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Summary: %s\n", core.Pluralize(summary.Verified+summary.NotVerified, "package checked", "packages checked"))
	_, _ = fmt.Fprintf(w, "  ✓ %d verified\n", summary.Verified)
	if summary.NotVerified > 0 {
		_, _ = fmt.Fprintf(w, "  ✗ %d NOT verified\n", summary.NotVerified)
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

// PrintHelp displays usage information for repro-verify commands.
func PrintHelp() {
	fmt.Println(styleTitle.Render("repro-verify"))
	fmt.Println("Verify that locally rebuilt APKs match the published ones")
	fmt.Println("\nUsage:")
	fmt.Println("  repro-verify [options] [APPID[:VERCODE] ...]")
	fmt.Println("                      Verify unsigned/*.apk against the repository")
	fmt.Println("  watch [options] [APPID[:VERCODE] ...]")
	fmt.Println("                      Verify once, then re-verify APKs as they appear")
	fmt.Println("  completion <shell>  Generate shell completion script (bash/zsh/fish/powershell)")
	fmt.Println("  version             Show version information")
	fmt.Println("  help                Show this help")
	fmt.Println("\nOptions:")
	fmt.Println("  --reuse-remote-apk  Verify against a previously downloaded APK in tmp/")
	fmt.Println("  --output-json       Write unsigned/<apk>.json and unsigned/verified.json")
	fmt.Println("  --config <file>     Read configuration from <file> (default: repro-verify.yml)")
	fmt.Println("  --verbose, -v       Show debug logs")
	fmt.Println("  --quiet, -q         Only show errors")
	fmt.Println("  --json              Print the run summary as JSON")
	fmt.Println("  --yes, -y           Answer yes to prompts (e.g. reset a corrupt audit file)")
	fmt.Println("\nExamples:")
	fmt.Println("  repro-verify")
	fmt.Println("  repro-verify --output-json org.example.app")
	fmt.Println("  repro-verify org.example.app:42 org.example.other")
	fmt.Println("  repro-verify --reuse-remote-apk --json")
	fmt.Println("  repro-verify watch --output-json")
	fmt.Println("  repro-verify completion bash > /etc/bash_completion.d/repro-verify")
	fmt.Println("\nThe exit status is the number of packages that were NOT verified.")
}
