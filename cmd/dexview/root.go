package main

import (
	"fmt"

	"dexview/internal/catalog"
	"dexview/internal/config"
	"dexview/internal/log"

	"github.com/spf13/cobra"
)

// rootOptions is the state shared by every subcommand
type rootOptions struct {
	configPath string
	debug      bool
	logFile    string
	cfg        *config.Config
}

// NewRootCmd creates the root command. Without a subcommand it starts the
// terminal viewer.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "dexview",
		Short: "Browse a paginated remote catalog",
		Long: `dexview browses a remote catalog page by page, looks records up by
name or ID and shows their details, in the terminal or on the desktop.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.load(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/dexview/config.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.logFile, "log-file", "", "log file used while a full-screen viewer runs")

	rootCmd.AddCommand(NewTUICmd(opts))
	rootCmd.AddCommand(NewGUICmd(opts))
	rootCmd.AddCommand(NewListCmd(opts))
	rootCmd.AddCommand(NewShowCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// load reads the configuration and sets up logging. A broken config file
// is reported and the defaults are used instead.
func (o *rootOptions) load(cmd *cobra.Command) {
	log.SetOutput(cmd.ErrOrStderr())

	var err error
	if o.configPath != "" {
		o.cfg, err = config.LoadConfigFile(o.configPath)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), warnText(fmt.Sprintf("Warning: %v", err)))
		fmt.Fprintln(cmd.ErrOrStderr(), mutedText("Using default settings."))
		o.cfg = config.New()
	}

	if err := log.SetLevel(o.cfg.Log.Level); err != nil {
		log.LogError(err, "Ignoring log level")
	}
	if o.debug {
		log.SetDebug(true)
	}
	if o.logFile != "" {
		o.cfg.Log.File = o.logFile
	}
}

func (o *rootOptions) client() *catalog.Client {
	return catalog.NewFromConfig(o.cfg)
}

// watchPath is the config file to watch for live changes
func (o *rootOptions) watchPath() string {
	if o.configPath != "" {
		return o.configPath
	}
	path, err := config.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}
