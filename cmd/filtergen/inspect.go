package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/internal/domain"
)

type inspection struct {
	Descriptor domain.RecordDescriptor `yaml:"descriptor"`
	Input      domain.InputShape       `yaml:"input"`
	Predicates []domain.PredicateRule  `yaml:"predicates"`
}

func newInspectCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the collected record descriptor, filter input and predicates as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := src.load(a)
			if err != nil {
				return err
			}
			desc, err := codegen.Collect(record)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(inspection{
				Descriptor: desc,
				Input:      codegen.Synthesize(desc),
				Predicates: codegen.SynthesizePredicates(desc),
			}); err != nil {
				return fmt.Errorf("failed to encode inspection: %w", err)
			}
			return enc.Close()
		},
	}

	src.register(cmd)
	return cmd
}
