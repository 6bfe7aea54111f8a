package core

import (
	"fmt"
	"strings"

	"github.com/featsweep/featsweep/internal/types"
)

// BuildInvocation constructs the verification command for a single flag:
//
//	tool subcommand --no-default-features --features base1,base2,flag extra... passthrough...
//
// The returned invocation owns its argv slice; callers never mutate it.
func BuildInvocation(cfg types.SweepConfig, flag string, passthrough []string) types.Invocation {
	features := strings.Join(append(append([]string{}, cfg.Baseline...), flag), FeatureSeparator)

	argv := make([]string, 0, 5+len(cfg.ExtraArgs)+len(passthrough))
	argv = append(argv, cfg.Tool, cfg.Subcommand, NoDefaultFeaturesArg, FeaturesArg, features)
	argv = append(argv, cfg.ExtraArgs...)
	argv = append(argv, passthrough...)

	return types.Invocation{Argv: argv, Flag: flag}
}

// plainChars are argument characters that never need quoting.
const plainChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// QuoteArg renders a single argument so a POSIX shell tokenizer yields
// it back verbatim. Plain arguments pass through untouched; everything
// else is single-quoted, with embedded single quotes spliced out as '"'"'.
func QuoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	plain := true
	for _, r := range arg {
		if !strings.ContainsRune(plainChars, r) {
			plain = false
			break
		}
	}
	if plain {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}

// QuoteCommand renders an argv as one shell-safe command line. This is
// the line echoed before each invocation so an operator can re-run the
// exact command by pasting it.
func QuoteCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, arg := range argv {
		quoted[i] = QuoteArg(arg)
	}
	return strings.Join(quoted, " ")
}

// SplitCommand tokenizes a shell command line back into an argv,
// honoring single quotes, double quotes, and backslash escapes. It is
// the inverse of QuoteCommand and exists so the lossless-quoting
// property can be checked; it is not a full shell (no expansion).
func SplitCommand(line string) ([]string, error) {
	var argv []string
	var current strings.Builder
	inWord := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case ' ', '\t':
			if inWord {
				argv = append(argv, current.String())
				current.Reset()
				inWord = false
			}
		case '\'':
			inWord = true
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("unterminated single quote at offset %d", i)
			}
			current.WriteString(line[i+1 : i+1+end])
			i += end + 1
		case '"':
			inWord = true
			closed := false
			for i++; i < len(line); i++ {
				if line[i] == '\\' && i+1 < len(line) {
					next := line[i+1]
					if next == '"' || next == '\\' || next == '$' || next == '`' {
						current.WriteByte(next)
						i++
						continue
					}
					current.WriteByte('\\')
					continue
				}
				if line[i] == '"' {
					closed = true
					break
				}
				current.WriteByte(line[i])
			}
			if !closed {
				return nil, fmt.Errorf("unterminated double quote")
			}
		case '\\':
			if i+1 >= len(line) {
				return nil, fmt.Errorf("trailing backslash")
			}
			inWord = true
			current.WriteByte(line[i+1])
			i++
		default:
			inWord = true
			current.WriteByte(c)
		}
	}

	if inWord {
		argv = append(argv, current.String())
	}
	return argv, nil
}
