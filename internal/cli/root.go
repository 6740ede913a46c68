// Package cli implements the mutations command tree.
package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/mutations/internal/cliconfig"
	"github.com/bft-labs/mutations/pkg/arith"
)

// RootOptions holds global flags and the resolved configuration.
type RootOptions struct {
	ConfigPath string
	Config     cliconfig.Config
	Log        zerolog.Logger
}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// NewRootCommand creates the root command for the mutations CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{
		Config: cliconfig.DefaultConfig(),
	}

	cmd := &cobra.Command{
		Use:           "mutations",
		Short:         "Unsigned 64-bit add and multiply",
		Long:          "Evaluate the same add_numbers / mult_numbers arithmetic the libmutations C library exports.",
		Version:       fmt.Sprintf("%s %s/%s (arith %s)", getVersion(), runtime.GOOS, runtime.GOARCH, arith.Version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default: $HOME/.mutations/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.Config.Policy, "policy", opts.Config.Policy, "overflow policy (wrap|saturate|fail)")
	cmd.PersistentFlags().StringVar(&opts.Config.LogLevel, "log-level", opts.Config.LogLevel, "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Config.Format, "format", opts.Config.Format, "output format (text|json)")

	cmd.AddCommand(newEvalCommand(opts, arith.OpAdd, "Add two unsigned 64-bit integers"))
	cmd.AddCommand(newEvalCommand(opts, arith.OpMult, "Multiply two unsigned 64-bit integers"))

	return cmd
}

// resolve layers the config file and MUTATIONS_* variables under any flags
// set on the command line, then builds the logger on the command's stderr.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := o.ConfigPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&o.Config, fc, changed)
	} else if o.ConfigPath != "" {
		return fmt.Errorf("load config: %s does not exist", o.ConfigPath)
	}

	cliconfig.ApplyEnvConfig(&o.Config, changed)

	if err := o.Config.Validate(); err != nil {
		return err
	}

	o.Log = cliconfig.NewLogger(cmd.ErrOrStderr(), o.Config.Level())
	o.Log.Debug().Interface("config", o.Config).Str("path", cfgFile).Msg("configuration")
	return nil
}
