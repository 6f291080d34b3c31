package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nexplorer/nexplorer/pkg/explorer"
	"github.com/nexplorer/nexplorer/pkg/nxconfig"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var osExit = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string
	cmd := &cobra.Command{
		Use:           "nexplorer",
		Short:         "Browse local and network drives in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := nxconfig.Load(v, configFile)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
				return err
			}
			return runExplorer(cfg)
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config `file` (default ~/.nexplorer.yaml)")
	cmd.Flags().String("dir", "", "start `directory`")
	_ = v.BindPFlag("start_dir", cmd.Flags().Lookup("dir"))
	return cmd
}

func runExplorer(cfg *nxconfig.Config) error {
	logger, closer, err := nxconfig.NewLogger(cfg.Log)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		logger, closer = log.New(io.Discard, "", 0), io.NopCloser(nil)
	}
	defer func() {
		_ = closer.Close()
	}()

	app, cleanup, err := newApp(cfg, logger)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	defer cleanup()
	return run(app)
}

var setupApp = explorer.SetupApp

var newApp = func(cfg *nxconfig.Config, logger *log.Logger) (application, func(), error) {
	app := tview.NewApplication()
	cleanup, err := setupApp(app, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, cleanup, nil
}

type application interface{ Run() error }

var run = func(app application) error {
	if err := app.Run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
