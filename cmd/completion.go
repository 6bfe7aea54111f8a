// Package cmd provides CLI utilities for featsweep
package cmd

import (
	"fmt"
	"strings"
)

// Commands available in featsweep
var commands = []string{
	"init",
	"check",
	"list",
	"watch",
	"completion",
	"help",
}

// GenerateBashCompletion generates bash completion script
func GenerateBashCompletion() string {
	return fmt.Sprintf(`# bash completion for featsweep
_featsweep_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Commands
    opts="%s"

    # Command-specific options
    case "${prev}" in
        check)
            opts="--package --group --baseline --offline --quiet -q --json --verbose -v --yes -y"
            ;;
        init)
            opts="--yes -y --quiet -q --json"
            ;;
        list)
            opts="--offline --quiet -q --json"
            ;;
        watch)
            opts="--offline --verbose -v"
            ;;
        completion)
            opts="bash zsh fish powershell"
            ;;
    esac

    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
    return 0
}

complete -F _featsweep_completions featsweep
`, strings.Join(commands, " "))
}

// GenerateZshCompletion generates zsh completion script
func GenerateZshCompletion() string {
	cmdList := make([]string, len(commands))
	for i, cmd := range commands {
		desc := getCommandDescription(cmd)
		cmdList[i] = fmt.Sprintf("    '%s:%s'", cmd, desc)
	}

	return fmt.Sprintf(`#compdef featsweep

_featsweep() {
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
                check)
                    _arguments \
                        '--package[Override configured package]:package:' \
                        '--group[Override configured feature group]:group:' \
                        '--baseline[Override baseline features]:baseline:' \
                        '--offline[Resolve flags from the manifest instead of cargo metadata]' \
                        '--quiet[Capture tool output, show progress]' \
                        '-q[Capture tool output, show progress]' \
                        '--json[JSON output]' \
                        '--verbose[Show tool commands]' \
                        '-v[Show tool commands]' \
                        '--yes[Skip confirmation]' \
                        '-y[Skip confirmation]'
                    ;;
                init)
                    _arguments \
                        '--yes[Skip wizard, write defaults]' \
                        '-y[Skip wizard, write defaults]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]'
                    ;;
                list)
                    _arguments \
                        '--offline[Resolve flags from the manifest instead of cargo metadata]' \
                        '--quiet[Minimal output]' \
                        '-q[Minimal output]' \
                        '--json[JSON output]'
                    ;;
                watch)
                    _arguments \
                        '--offline[Resolve flags from the manifest instead of cargo metadata]' \
                        '--verbose[Show tool commands]' \
                        '-v[Show tool commands]'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish powershell)'
                    ;;
            esac
            ;;
    esac
}

_featsweep "$@"
`, strings.Join(cmdList, "\n"))
}

// GenerateFishCompletion generates fish completion script
func GenerateFishCompletion() string {
	var completions []string

	// Add command completions
	for _, cmd := range commands {
		desc := getCommandDescription(cmd)
		completions = append(completions, fmt.Sprintf("complete -c featsweep -f -n '__fish_use_subcommand' -a '%s' -d '%s'", cmd, desc))
	}

	// Add flag completions
	completions = append(completions, "# check command flags")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l package -d 'Override configured package' -r")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l group -d 'Override configured feature group' -r")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l baseline -d 'Override baseline features' -r")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l offline -d 'Resolve flags from the manifest'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l quiet -s q -d 'Capture tool output, show progress'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l json -d 'JSON output'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l verbose -s v -d 'Show tool commands'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from check' -l yes -s y -d 'Skip confirmation'")

	completions = append(completions, "# init command flags")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from init' -l yes -s y -d 'Skip wizard, write defaults'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from init' -l quiet -s q -d 'Minimal output'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from init' -l json -d 'JSON output'")

	completions = append(completions, "# list command flags")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from list' -l offline -d 'Resolve flags from the manifest'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from list' -l quiet -s q -d 'Minimal output'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from list' -l json -d 'JSON output'")

	completions = append(completions, "# watch command flags")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from watch' -l offline -d 'Resolve flags from the manifest'")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from watch' -l verbose -s v -d 'Show tool commands'")

	completions = append(completions, "# completion command shells")
	completions = append(completions, "complete -c featsweep -n '__fish_seen_subcommand_from completion' -f -a 'bash zsh fish powershell'")

	return strings.Join(completions, "\n")
}

// GeneratePowerShellCompletion generates PowerShell completion script
func GeneratePowerShellCompletion() string {
	cmdArray := make([]string, len(commands))
	for i, cmd := range commands {
		cmdArray[i] = fmt.Sprintf("'%s'", cmd)
	}

	return fmt.Sprintf(`# PowerShell completion for featsweep
Register-ArgumentCompleter -Native -CommandName featsweep -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @(%s)

    $line = $commandAst.ToString()
    $tokens = $line.Split(' ')

    if ($tokens.Count -eq 2) {
        # Complete command
        $commands | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }
    elseif ($tokens.Count -gt 2) {
        $subcommand = $tokens[1]

        switch ($subcommand) {
            'check' {
                @('--package', '--group', '--baseline', '--offline', '--quiet', '-q', '--json', '--verbose', '-v', '--yes', '-y') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'init' {
                @('--yes', '-y', '--quiet', '-q', '--json') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'list' {
                @('--offline', '--quiet', '-q', '--json') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'watch' {
                @('--offline', '--verbose', '-v') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
            'completion' {
                @('bash', 'zsh', 'fish', 'powershell') |
                    Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
                    }
            }
        }
    }
}
`, strings.Join(cmdArray, ", "))
}

// getCommandDescription returns a short description for a command
func getCommandDescription(cmd string) string {
	descriptions := map[string]string{
		"init":       "Create featsweep.yml",
		"check":      "Verify each feature flag in isolation",
		"list":       "List flags in the configured group",
		"watch":      "Re-check when the manifest changes",
		"completion": "Generate shell completion script",
		"help":       "Show help information",
	}

	if desc, ok := descriptions[cmd]; ok {
		return desc
	}
	return ""
}
