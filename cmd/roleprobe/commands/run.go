package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/roleprobe/cmd/roleprobe/handlers"
)

// Run returns the run command.
//
// The run command performs one probe invocation with arguments gathered
// from an args file, ROLEPROBE_ARG_* environment variables and --arg flags.
func Run() *cobra.Command {
	var opts handlers.RunOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Upload one empty object with the given credentials",
		Long: `Run performs a single probe invocation.

Arguments are merged from, in increasing precedence:
  - the args file (--args-file, YAML or JSON)
  - ROLEPROBE_ARG_<KEY> environment variables
  - --arg key=value flags

Accepted argument shapes:
  access_key, secret_key_id, access_token, s3_bucket   (writes test.txt)
  s3bucket, s3file, credsfile
  s3uri, credsfile

Optional: region, endpoint_url, path_style.

Every missing argument is reported and the run fails before any file
or network access.

Example:
  roleprobe run --arg s3uri=s3://my-bucket/probes/roleprobe.txt --arg credsfile=/etc/roleprobe/creds.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ArgsFile, "args-file", "f", "", "Path to a YAML or JSON args file")
	cmd.Flags().StringArrayVarP(&opts.Args, "arg", "a", nil, "Invocation argument as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", handlers.LogFormatText, "Log format: text or logr (JSON lines)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write prometheus metrics to this file after the run")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Deadline for the whole run (default from ROLEPROBE_TIMEOUT, none if unset)")

	return cmd
}
