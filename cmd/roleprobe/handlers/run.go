// Package handlers contains the execution logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/imamik/roleprobe/internal/config"
	"github.com/imamik/roleprobe/internal/logging"
	"github.com/imamik/roleprobe/internal/metrics"
	"github.com/imamik/roleprobe/internal/task"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatLogr = "logr"
)

// RunOptions are the flags of the run command.
type RunOptions struct {
	ArgsFile    string
	Args        []string
	LogFormat   string
	MetricsFile string
	Timeout     time.Duration
}

// Factory function variables for run - can be replaced in tests.
var (
	// runTask executes one probe.
	runTask = task.Run

	// now returns the invocation time.
	now = time.Now

	// environ returns the process environment.
	environ = os.Environ

	// logOutput receives log lines.
	logOutput io.Writer = os.Stderr
)

// Run handles the run command.
//
// It merges the invocation arguments, builds the logger and optional
// metrics recorder, and invokes the probe task once.
func Run(ctx context.Context, opts RunOptions) error {
	logger, err := newLogger(opts.LogFormat, logOutput)
	if err != nil {
		return err
	}

	args, err := collectArgs(opts)
	if err != nil {
		return err
	}
	logger.Info("Invocation arguments: %s", strings.Join(config.SortedKeys(args), ", "))

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = config.LoadRunTimeout()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var registry *prometheus.Registry
	var recorder *metrics.Recorder
	if opts.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		recorder, err = metrics.NewRecorder(registry)
		if err != nil {
			return err
		}
	}

	runErr := runTask(ctx, now(), task.Arguments(args), task.Deps{
		Logger:  logger,
		Metrics: recorder,
	})

	if registry != nil {
		if err := metrics.WriteTextfile(opts.MetricsFile, registry); err != nil {
			if runErr == nil {
				return err
			}
			logger.Info("Warning: %v", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("probe failed: %w", runErr)
	}
	return nil
}

// collectArgs merges the args file, environment and flags, in that order.
func collectArgs(opts RunOptions) (map[string]string, error) {
	var fileArgs map[string]string
	if opts.ArgsFile != "" {
		var err error
		fileArgs, err = config.LoadArgs(opts.ArgsFile)
		if err != nil {
			return nil, err
		}
	}

	flagArgs, err := config.ParseArgFlags(opts.Args)
	if err != nil {
		return nil, err
	}

	return config.MergeArgs(fileArgs, config.ArgsFromEnv(environ()), flagArgs), nil
}

func newLogger(format string, out io.Writer) (logging.Logger, error) {
	switch format {
	case "", LogFormatText:
		return logging.NewStdLogger(log.New(out, "", log.LstdFlags)), nil
	case LogFormatLogr:
		return logging.NewJSONLogger(out, "roleprobe"), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (expected %s or %s)", format, LogFormatText, LogFormatLogr)
	}
}
