// Command filtergen generates Filter Input types and filter query functions
// for Go records described by a YAML descriptor or a Go struct.
//
//	//go:generate filtergen generate --source user.go --type User
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rpattn/filtergen/internal/config"
	"github.com/rpattn/filtergen/internal/logging"
)

type app struct {
	configFile string
	verbose    bool

	cfg config.Config
	log zerolog.Logger
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = zerolog.DebugLevel.String()
	}

	a.cfg = cfg
	a.log = logging.New(stderr, cfg.Log)
	if cfg.File != "" {
		a.log.Debug().Str("file", cfg.File).Msg("loaded config")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "filtergen",
		Short:         "Generate filter inputs and query functions for Go records",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./filtergen.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newGenerateCmd(a),
		newInspectCmd(a),
		newPreviewCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
