package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/featsweep/featsweep/internal/core"
	"github.com/featsweep/featsweep/internal/types"
)

func check(err error) {
	if err != nil {
		fmt.Println("Aborted.")
		os.Exit(1)
	}
}

// --- INIT WIZARD ---

// RunInitWizard launches the interactive wizard for creating a sweep config.
// Returns nil if the user declines the final confirmation.
func RunInitWizard(defaultPackage string) *types.SweepConfig {
	fmt.Println(styleTitle.Render("featsweep init"))

	var pkg string
	err := huh.NewInput().
		Title("Package name").
		Placeholder(defaultPackage).
		Description("The crate whose feature flags will be verified").
		Value(&pkg).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" && defaultPackage == "" {
				return fmt.Errorf("package name cannot be empty")
			}
			return nil
		}).
		Run()
	check(err)
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		pkg = defaultPackage
	}

	group := core.DefaultGroup
	err = huh.NewInput().
		Title("Feature group").
		Description("The umbrella feature whose members are checked one at a time").
		Value(&group).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("feature group cannot be empty")
			}
			return nil
		}).
		Run()
	check(err)

	var baselineRaw string
	err = huh.NewInput().
		Title("Baseline features").
		Placeholder("async-io").
		Description("Comma-separated features enabled alongside every checked flag (optional)").
		Value(&baselineRaw).
		Run()
	check(err)

	subcommand := core.DefaultSubcommand
	err = huh.NewSelect[string]().
		Title("Verification subcommand").
		Options(
			huh.NewOption("clippy (lint)", "clippy"),
			huh.NewOption("check (type-check)", "check"),
			huh.NewOption("build (full build)", "build"),
			huh.NewOption("test (run tests)", "test"),
		).
		Value(&subcommand).
		Run()
	check(err)

	cfg := &types.SweepConfig{
		Package:    pkg,
		Group:      strings.TrimSpace(group),
		Baseline:   splitBaseline(baselineRaw),
		Tool:       core.DefaultTool,
		Subcommand: subcommand,
		Manifest:   core.DefaultManifest,
	}

	fmt.Println(styleDim.Render(fmt.Sprintf("  package:    %s", cfg.Package)))
	fmt.Println(styleDim.Render(fmt.Sprintf("  group:      %s", cfg.Group)))
	if len(cfg.Baseline) > 0 {
		fmt.Println(styleDim.Render(fmt.Sprintf("  baseline:   %s", strings.Join(cfg.Baseline, ","))))
	}
	fmt.Println(styleDim.Render(fmt.Sprintf("  subcommand: %s %s", cfg.Tool, cfg.Subcommand)))

	var confirmed bool
	err = huh.NewConfirm().
		Title(fmt.Sprintf("Write %s?", core.ConfigName)).
		Value(&confirmed).
		Run()
	check(err)

	if !confirmed {
		return nil
	}
	return cfg
}

func splitBaseline(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
