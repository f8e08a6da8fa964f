package cli

import (
	"fmt"

	"github.com/arthur-debert/loadfile"
	"github.com/arthur-debert/loadfile/internal/version"
	"github.com/arthur-debert/loadfile/pkg/codec"
	"github.com/arthur-debert/loadfile/pkg/config"
	"github.com/arthur-debert/loadfile/pkg/logging"
	"github.com/spf13/cobra"
)

// env is what every command works against once flags are parsed.
type env struct {
	cfg    *config.Config
	client *loadfile.Client
	codec  codec.Codec
	app    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		app        string
		configFile string
		e          env
	)

	rootCmd := &cobra.Command{
		Use:     "loadfile",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			logger := logging.GetLogger("cli")
			logger.Debug().Str("command", cmd.Name()).Msg("Command started")

			var opts []config.Option
			if configFile != "" {
				opts = append(opts, config.WithFile(configFile))
			}
			cfg, err := config.Load(opts...)
			if err != nil {
				return err
			}
			c, err := cfg.ResolveCodec()
			if err != nil {
				return err
			}
			client, err := loadfile.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			e = env{cfg: cfg, client: client, codec: c, app: cfg.App}
			if app != "" {
				e.app = app
			}
			logger.Debug().Str("app", e.app).Str("codec", c.Name()).Msg("Configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&app, "app", "", MsgFlagApp)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	rootCmd.AddCommand(newCatCmd(&e))
	rootCmd.AddCommand(newSaveCmd(&e))
	rootCmd.AddCommand(newLoadCmd(&e))
	rootCmd.AddCommand(newPathsCmd(&e))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		// Skip config loading, version must work with a broken setup
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}
