// Package main implements the repro-verify CLI, which checks that locally
// rebuilt APKs are identical to the ones published in a repository.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/EmundoT/repro-verify/cmd"
	"github.com/EmundoT/repro-verify/internal/core"
	"github.com/EmundoT/repro-verify/internal/tui"
	"github.com/EmundoT/repro-verify/internal/types"
	"github.com/EmundoT/repro-verify/internal/version"
)

// cliOptions is everything parsed from the command line of a verify or
// watch run.
type cliOptions struct {
	flags      core.NonInteractiveFlags
	verbose    bool
	configPath string
	verify     core.VerifyOptions
	packages   []string
}

// parseVerifyArgs parses flags and APPID[:VERCODE] arguments.
func parseVerifyArgs(args []string) (cliOptions, error) {
	opts := cliOptions{configPath: core.ConfigFile}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--yes" || arg == "-y":
			opts.flags.Yes = true
		case arg == "--quiet" || arg == "-q":
			opts.flags.Mode = core.OutputQuiet
		case arg == "--json":
			opts.flags.Mode = core.OutputJSON
		case arg == "--verbose" || arg == "-v":
			opts.verbose = true
		case arg == "--reuse-remote-apk":
			opts.verify.ReuseRemote = true
		case arg == "--output-json":
			opts.verify.OutputJSON = true
		case arg == "--config":
			if i+1 >= len(args) {
				return opts, errors.New("--config requires a file argument")
			}
			i++
			opts.configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			opts.configPath = strings.TrimPrefix(arg, "--config=")
		case arg == "--":
			opts.packages = append(opts.packages, args[i+1:]...)
			i = len(args)
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown flag %s", arg)
		default:
			opts.packages = append(opts.packages, arg)
		}
	}

	filter, err := core.ParsePackageArgs(opts.packages)
	if err != nil {
		return opts, err
	}
	opts.verify.Filter = filter
	return opts, nil
}

// setup resolves configuration and builds the manager for a run.
func setup(opts cliOptions) (*core.Manager, core.UICallback, *slog.Logger, error) {
	logger := core.NewLogger(os.Stderr, opts.verbose, opts.flags.Mode == core.OutputQuiet)
	slog.SetDefault(logger)

	callback := tui.NewCallback(opts.flags)

	cfg, err := core.LoadConfig(opts.configPath)
	if err != nil {
		return nil, callback, logger, err
	}

	return core.NewManager(cfg, callback, logger), callback, logger, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runVerify runs one batch and returns the process exit status.
func runVerify(ctx context.Context, manager *core.Manager, callback core.UICallback, logger *slog.Logger, opts cliOptions) int {
	summary, err := manager.Verify(ctx, opts.verify)
	if err != nil {
		if errors.Is(err, core.ErrNoUnsignedDir) {
			logger.Error(err.Error(), "dir", manager.Config().UnsignedDir)
			return 0
		}
		callback.ShowError("Verification Failed", err.Error())
		return 1
	}

	switch opts.flags.Mode {
	case core.OutputJSON:
		if err := printJSON(summary); err != nil {
			callback.ShowError("JSON Output Failed", err.Error())
			return 1
		}
	case core.OutputNormal:
		fmt.Println()
		tui.PrintSummary(os.Stdout, summary)
	}

	return summary.ExitCode()
}

// runWatch verifies once, then keeps verifying new artifacts until
// interrupted. The exit status is that of the last verification.
func runWatch(ctx context.Context, manager *core.Manager, callback core.UICallback, logger *slog.Logger, opts cliOptions) int {
	status := runVerify(ctx, manager, callback, logger, opts)
	if ctx.Err() != nil {
		return status
	}

	if opts.flags.Mode == core.OutputNormal {
		tui.PrintInfo(fmt.Sprintf("Watching %s for new APKs. Press Ctrl+C to stop.", manager.Config().UnsignedDir))
	}

	err := manager.Watch(ctx, opts.verify, func(res types.ArtifactResult) {
		status = 0
		if res.Status != types.ArtifactStatusVerified {
			status = 1
		}
		if opts.flags.Mode == core.OutputJSON {
			_ = printJSON(res)
		}
	})
	if err != nil {
		if errors.Is(err, core.ErrNoUnsignedDir) {
			logger.Error(err.Error(), "dir", manager.Config().UnsignedDir)
			return status
		}
		callback.ShowError("Watch Failed", err.Error())
		return 1
	}
	return status
}

func main() {
	args := os.Args[1:]
	command := ""
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "--help", "-h", "help":
		tui.PrintHelp()
		return

	case "--version", "version":
		fmt.Printf("repro-verify %s\n", version.GetFullVersion())
		return

	case "completion":
		if len(args) < 2 {
			tui.PrintError("Usage", "repro-verify completion <shell>\nSupported shells: bash, zsh, fish, powershell")
			os.Exit(1)
		}

		var script string
		switch shell := args[1]; shell {
		case "bash":
			script = cmd.GenerateBashCompletion()
		case "zsh":
			script = cmd.GenerateZshCompletion()
		case "fish":
			script = cmd.GenerateFishCompletion()
		case "powershell":
			script = cmd.GeneratePowerShellCompletion()
		default:
			tui.PrintError("Invalid Shell", fmt.Sprintf("'%s' is not supported. Use: bash, zsh, fish, or powershell", shell))
			os.Exit(1)
		}
		fmt.Println(script)
		return
	}

	watch := command == "watch"
	if watch {
		args = args[1:]
	}

	opts, err := parseVerifyArgs(args)
	if err != nil {
		tui.PrintError("Invalid Arguments", err.Error()+"\nRun 'repro-verify help' for usage")
		os.Exit(1)
	}

	manager, callback, logger, err := setup(opts)
	if err != nil {
		callback.ShowError("Configuration Error", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var status int
	if watch {
		status = runWatch(ctx, manager, callback, logger, opts)
	} else {
		status = runVerify(ctx, manager, callback, logger, opts)
	}

	stop()
	os.Exit(status)
}
