// Package cmd provides CLI utilities for repro-verify
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in repro-verify. Running without a command verifies.
var commands = []string{
	"watch",
	"completion",
	"version",
	"help",
}

// verifyFlags are accepted by the default verify run and by watch.
var verifyFlags = []flagSpec{
	{long: "reuse-remote-apk", desc: "Reuse a downloaded APK in tmp/"},
	{long: "output-json", desc: "Write audit records"},
	{long: "config", desc: "Config file", takesValue: true},
	{long: "verbose", short: "v", desc: "Show debug logs"},
	{long: "quiet", short: "q", desc: "Only show errors"},
	{long: "json", desc: "JSON summary"},
	{long: "yes", short: "y", desc: "Answer yes to prompts"},
}

var shells = []string{"bash", "zsh", "fish", "powershell"}

type flagSpec struct {
	long       string
	short      string
	desc       string
	takesValue bool
}

func flagWords() []string {
	var words []string
	for _, f := range verifyFlags {
		words = append(words, "--"+f.long)
		if f.short != "" {
			words = append(words, "-"+f.short)
		}
	}
	return words
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for repro-verify
_repro_verify_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands and flags of the default verify run
    opts="%s %s"

    case "${prev}" in
        watch)
            opts="%s"
            ;;
        completion)
            opts="%s"
            ;;
        --config)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
        version|help)
            opts=""
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _repro_verify_completions repro-verify
`, strings.Join(commands, " "), strings.Join(flagWords(), " "), strings.Join(flagWords(), " "), strings.Join(shells, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, getCommandDescription(cmd))
	}

	var flagList []string
	for _, f := range verifyFlags {
		value := ""
		if f.takesValue {
			value = ":file:_files"
		}
		flagList = append(flagList, fmt.Sprintf("                        '--%s[%s]%s'", f.long, f.desc, value))
		if f.short != "" {
			flagList = append(flagList, fmt.Sprintf("                        '-%s[%s]'", f.short, f.desc))
		}
	}

	return fmt.Sprintf(`#compdef repro-verify

_repro_verify() {
    local -a commands
    commands=(
%s
    )

    _arguments -C \
        '1: :->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                watch)
                    _arguments \
%s
                    ;;
                completion)
                    _arguments '1:shell:(%s)'
                    ;;
            esac
            ;;
    esac
}

_repro_verify "$@"
`, strings.Join(cmdList, "\n"), strings.Join(flagList, " \\\n"), strings.Join(shells, " "))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	for _, cmd := range commands {
		completions = append(completions, fmt.Sprintf("complete -c repro-verify -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, getCommandDescription(cmd)))
	}

	completions = append(completions, "# verify and watch flags")
	for _, f := range verifyFlags {
		line := fmt.Sprintf("complete -c repro-verify -n 'not __fish_seen_subcommand_from completion version help' -l %s", f.long)
		if f.short != "" {
			line += " -s " + f.short
		}
		if f.takesValue {
			line += " -r"
		}
		line += fmt.Sprintf(" -d '%s'", f.desc)
		completions = append(completions, line)
	}

	completions = append(completions, "# completion command shells")
	completions = append(completions, fmt.Sprintf("complete -c repro-verify -n '__fish_seen_subcommand_from completion' -f -a '%s'", strings.Join(shells, " ")))

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	quote := func(items []string) string {
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = fmt.Sprintf("'%s'", item)
		}
		return strings.Join(quoted, ", ")
	}

	return fmt.Sprintf(`# PowerShell completion for repro-verify
Register-ArgumentCompleter -Native -CommandName repro-verify -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)
    $flags = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command or flag of the default run
        ($commands + $flags) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
            'completion' {
                @(%s) |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            default {
                $flags |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, quote(commands), quote(flagWords()), quote(shells))
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	descriptions := map[string]string{
		"watch":      "Verify new APKs as they appear",
		"completion": "Generate shell completion",
		"version":    "Show version information",
		"help":       "Show help",
	}
	if desc, ok := descriptions[cmd]; ok {
		return desc
	}
	return cmd
}
