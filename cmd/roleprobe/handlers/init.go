package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/roleprobe/internal/config"
	"github.com/imamik/roleprobe/internal/config/wizard"
	"github.com/imamik/roleprobe/internal/task"
)

// Factory function variables for init - can be replaced in tests.
var (
	wizardFileExists       = wizard.FileExists
	wizardConfirmOverwrite = wizard.ConfirmOverwrite
	wizardRun              = wizard.RunWizard
	wizardWriteArgs        = wizard.WriteArgs

	// isInteractive reports whether stdin is a terminal.
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

// errNotInteractive is returned when init runs without a terminal.
var errNotInteractive = errors.New("init requires an interactive terminal; write the args file by hand or pass --arg flags to run")

// Init runs the wizard and writes the resulting args file.
func Init(ctx context.Context, outputPath string) error {
	if !isInteractive() {
		return errNotInteractive
	}

	if wizardFileExists(outputPath) {
		ok, err := wizardConfirmOverwrite(outputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	printWelcome()

	result, err := wizardRun(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	args := result.Args()
	if err := wizardWriteArgs(args, outputPath); err != nil {
		return fmt.Errorf("failed to write args file: %w", err)
	}

	printInitSuccess(outputPath, result.Variant, args)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println(titleStyle.Render("roleprobe - storage credential probe"))
	fmt.Println()
	fmt.Println("This wizard writes the arguments a scheduler passes to 'roleprobe run'.")
	fmt.Println()
}

// printInitSuccess prints the summary and next steps. Secret values are not echoed.
func printInitSuccess(outputPath, variant string, args map[string]string) {
	fmt.Println()
	fmt.Println(successStyle.Render("Args file saved!"))
	fmt.Println()
	fmt.Printf("  File:    %s\n", outputPath)
	fmt.Printf("  Variant: %s\n", variant)
	for _, key := range config.SortedKeys(args) {
		value := args[key]
		if isSecretKey(key) {
			value = "********"
		}
		fmt.Printf("  %-13s %s\n", key+":", value)
	}
	fmt.Println()
	fmt.Println(dimStyle.Render("Next: roleprobe run --args-file " + outputPath))
}

func isSecretKey(key string) bool {
	return key == task.KeySecretKeyID || key == task.KeyAccessToken
}
