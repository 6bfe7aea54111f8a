// Package main implements the featsweep CLI tool for verifying Cargo feature flags one combination at a time.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/featsweep/featsweep/cmd"
	"github.com/featsweep/featsweep/internal/core"
	"github.com/featsweep/featsweep/internal/tui"
	"github.com/featsweep/featsweep/internal/types"
	"github.com/featsweep/featsweep/internal/version"
)

// Version information is managed in internal/version package
// Release builds inject version info directly via ldflags

// parseCommonFlags extracts common non-interactive flags from args
// Returns: flags, remainingArgs
func parseCommonFlags(args []string) (core.NonInteractiveFlags, []string) {
	flags := core.NonInteractiveFlags{}
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--yes", "-y":
			flags.Yes = true
		case "--quiet", "-q":
			flags.Mode = core.OutputQuiet
		case "--json":
			flags.Mode = core.OutputJSON
		default:
			remaining = append(remaining, arg)
		}
	}

	return flags, remaining
}

// splitPassthrough separates featsweep's own args from args forwarded to
// the verification tool. Everything after the first "--" is forwarded.
func splitPassthrough(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// selectCallback picks the interactive TUI unless a non-interactive flag
// forces the plain one.
func selectCallback(flags core.NonInteractiveFlags) core.UICallback {
	if flags.Yes || flags.Mode != core.OutputNormal {
		return tui.NewNonInteractiveTUICallback(flags)
	}
	return tui.NewTUICallback()
}

// resolveErrorTitle maps resolver failures to the titles shown to the user.
func resolveErrorTitle(err error) string {
	switch {
	case errors.Is(err, core.ErrMetadataUnavailable):
		return "Metadata Unavailable"
	case errors.Is(err, core.ErrPackageNotFound):
		return "Package Not Found"
	case errors.Is(err, core.ErrGroupNotFound):
		return "Group Not Found"
	default:
		return "Error"
	}
}

func main() {
	if len(os.Args) < 2 {
		tui.PrintHelp()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle help flags
	if command == "--help" || command == "-h" || command == "help" {
		tui.PrintHelp()
		os.Exit(0)
	}

	// Handle version flag
	if command == "--version" {
		fmt.Printf("featsweep %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
		os.Exit(0)
	}

	ctx := context.Background()
	manager := core.NewManager()
	manager.SetUICallback(tui.NewTUICallback()) // Set TUI for user interaction

	switch command {
	case "init":
		flags, _ := parseCommonFlags(os.Args[2:])
		callback := selectCallback(flags)
		manager.SetUICallback(callback)

		detected := core.DetectPackageName(core.DefaultManifest)

		if core.IsInitialized() {
			confirmed := callback.AskConfirmation(
				fmt.Sprintf("Overwrite %s?", core.ConfigName),
				"An existing config will be replaced.",
			)
			if !confirmed {
				if flags.Mode != core.OutputQuiet {
					fmt.Println("Cancelled.")
				}
				os.Exit(1)
			}
		}

		var cfg *types.SweepConfig
		if flags.Yes || flags.Mode != core.OutputNormal {
			if detected == "" {
				callback.ShowError("Init Failed", fmt.Sprintf("no package name found in %s; run init interactively", core.DefaultManifest))
				os.Exit(1)
			}
			cfg = &types.SweepConfig{Package: detected}
			core.ApplyDefaults(cfg)
		} else {
			cfg = tui.RunInitWizard(detected)
			if cfg == nil {
				return
			}
		}

		if err := manager.SaveConfig(*cfg); err != nil {
			callback.ShowError("Init Failed", err.Error())
			os.Exit(1)
		}
		callback.ShowSuccess(fmt.Sprintf("Wrote %s for package %s", core.ConfigName, cfg.Package))

	case "check":
		args, passthrough := splitPassthrough(os.Args[2:])
		flags, rest := parseCommonFlags(args)

		var offline bool
		var pkgOverride, groupOverride, baselineOverride string
		for i := 0; i < len(rest); i++ {
			switch rest[i] {
			case "--offline":
				offline = true
			case "--verbose", "-v":
				core.Verbose = true
			case "--package", "--group", "--baseline":
				name := rest[i]
				if i+1 >= len(rest) {
					tui.PrintError("Usage", fmt.Sprintf("%s requires a value", name))
					os.Exit(1)
				}
				i++
				switch name {
				case "--package":
					pkgOverride = rest[i]
				case "--group":
					groupOverride = rest[i]
				case "--baseline":
					baselineOverride = rest[i]
				}
			default:
				tui.PrintError("Usage", fmt.Sprintf("unknown flag %q. See 'featsweep help'", rest[i]))
				os.Exit(1)
			}
		}

		callback := selectCallback(flags)
		manager.SetUICallback(callback)

		cfg, err := manager.GetConfig()
		if err != nil {
			if errors.Is(err, core.ErrNotInitialized) {
				callback.ShowError("Not Initialized", err.Error())
			} else {
				callback.ShowError("Config Error", err.Error())
			}
			os.Exit(1)
		}

		if pkgOverride != "" {
			cfg.Package = pkgOverride
		}
		if groupOverride != "" {
			cfg.Group = groupOverride
		}
		if baselineOverride != "" {
			cfg.Baseline = splitCommaList(baselineOverride)
		}

		if !core.IsToolInstalled(cfg.Tool) {
			callback.ShowError("Error", fmt.Sprintf("%s not found.", cfg.Tool))
			os.Exit(1)
		}

		group, err := manager.ResolveFlags(ctx, cfg, offline)
		if err != nil {
			if flags.Mode == core.OutputJSON {
				_ = callback.FormatJSON(core.JSONOutput{
					Status: "error",
					Error:  &core.JSONError{Title: resolveErrorTitle(err), Message: err.Error()},
				})
			} else {
				callback.ShowError(resolveErrorTitle(err), err.Error())
			}
			os.Exit(1)
		}

		opts := core.SweepOptions{
			Passthrough: passthrough,
			Quiet:       flags.Mode != core.OutputNormal,
		}
		if flags.Mode == core.OutputQuiet && len(group) > 0 {
			opts.Progress = tui.NewProgressTracker(len(group),
				fmt.Sprintf("Checking %s of %s", core.Pluralize(len(group), "flag", "flags"), cfg.Package))
		}

		result, err := manager.Sweep(ctx, cfg, group, opts)

		if flags.Mode == core.OutputJSON {
			_ = callback.FormatJSON(core.SweepJSONOutput(result, err))
			if err != nil {
				os.Exit(core.ExitCodeOf(err))
			}
			return
		}

		if err != nil {
			callback.ShowError("Check Failed", err.Error())
			os.Exit(core.ExitCodeOf(err))
		}

		if len(group) == 0 {
			callback.ShowSuccess(fmt.Sprintf("Group %q is empty; nothing to check", cfg.Group))
			return
		}
		callback.ShowSuccess(fmt.Sprintf("All %s passed", core.Pluralize(len(group), "flag", "flags")))

	case "list":
		flags, rest := parseCommonFlags(os.Args[2:])

		var offline bool
		for _, arg := range rest {
			switch arg {
			case "--offline":
				offline = true
			case "--verbose", "-v":
				core.Verbose = true
			default:
				tui.PrintError("Usage", fmt.Sprintf("unknown flag %q. See 'featsweep help'", arg))
				os.Exit(1)
			}
		}

		callback := selectCallback(flags)
		manager.SetUICallback(callback)

		cfg, err := manager.GetConfig()
		if err != nil {
			callback.ShowError("Error", err.Error())
			os.Exit(1)
		}

		group, err := manager.ResolveFlags(ctx, cfg, offline)
		if err != nil {
			if flags.Mode == core.OutputJSON {
				_ = callback.FormatJSON(core.JSONOutput{
					Status: "error",
					Error:  &core.JSONError{Title: resolveErrorTitle(err), Message: err.Error()},
				})
			} else {
				callback.ShowError(resolveErrorTitle(err), err.Error())
			}
			os.Exit(1)
		}

		switch {
		case flags.Mode == core.OutputJSON:
			_ = callback.FormatJSON(core.JSONOutput{
				Status:  "success",
				Message: fmt.Sprintf("%s in group %q", core.Pluralize(len(group), "flag", "flags"), cfg.Group),
				Data: map[string]interface{}{
					"package": cfg.Package,
					"group":   cfg.Group,
					"flags":   []string(group),
				},
			})

		case flags.Mode == core.OutputQuiet:
			for _, flag := range group {
				fmt.Println(flag)
			}

		default:
			fmt.Println(tui.StyleTitle(fmt.Sprintf("%s / %s", cfg.Package, cfg.Group)))
			if len(group) == 0 {
				tui.PrintInfo("  (empty group)")
				return
			}
			for _, flag := range group {
				fmt.Printf("  - %s\n", flag)
			}
			tui.PrintInfo(core.Pluralize(len(group), "flag", "flags"))
		}

	case "watch":
		args, passthrough := splitPassthrough(os.Args[2:])
		flags, rest := parseCommonFlags(args)

		var offline bool
		for _, arg := range rest {
			switch arg {
			case "--offline":
				offline = true
			case "--verbose", "-v":
				core.Verbose = true
			default:
				tui.PrintError("Usage", fmt.Sprintf("unknown flag %q. See 'featsweep help'", arg))
				os.Exit(1)
			}
		}

		callback := selectCallback(flags)
		manager.SetUICallback(callback)

		cfg, err := manager.GetConfig()
		if err != nil {
			callback.ShowError("Error", err.Error())
			os.Exit(1)
		}

		// Re-check on every manifest or config change
		err = manager.Watch(ctx, cfg.Manifest, func() error {
			cfg, err := manager.GetConfig()
			if err != nil {
				return err
			}
			group, err := manager.ResolveFlags(ctx, cfg, offline)
			if err != nil {
				return err
			}
			_, err = manager.Sweep(ctx, cfg, group, core.SweepOptions{Passthrough: passthrough})
			return err
		})

		if err != nil {
			callback.ShowError("Watch Failed", err.Error())
			os.Exit(1)
		}

	case "completion":
		if len(os.Args) < 3 {
			tui.PrintError("Usage", "featsweep completion <bash|zsh|fish|powershell>")
			os.Exit(1)
		}

		shell := os.Args[2]
		switch shell {
		case "bash":
			fmt.Print(cmd.GenerateBashCompletion())
		case "zsh":
			fmt.Print(cmd.GenerateZshCompletion())
		case "fish":
			fmt.Print(cmd.GenerateFishCompletion())
		case "powershell":
			fmt.Print(cmd.GeneratePowerShellCompletion())
		default:
			tui.PrintError("Error", fmt.Sprintf("unsupported shell %q. Supported: bash, zsh, fish, powershell", shell))
			os.Exit(1)
		}

	default:
		tui.PrintError("Unknown Command", fmt.Sprintf("'%s' is not a featsweep command. See 'featsweep help'", command))
		os.Exit(1)
	}
}

// splitCommaList splits a comma-separated flag value, dropping empties.
func splitCommaList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
