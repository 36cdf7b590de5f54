package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rpattn/filtergen/internal/codegen"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		src        sourceFlags
		out        string
		graphqlOut string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the Filter Input type and query functions for a record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := src.load(a)
			if err != nil {
				return err
			}

			gen := a.cfg.Generator
			flags := cmd.Flags()
			if flags.Changed("package") {
				gen.Package, _ = flags.GetString("package")
			}
			if flags.Changed("binding") {
				gen.Binding, _ = flags.GetString("binding")
			}
			if flags.Changed("dialect") {
				gen.Dialect, _ = flags.GetString("dialect")
			}
			if flags.Changed("per-page") {
				gen.PerPage, _ = flags.GetInt64("per-page")
			}
			opts, err := gen.Options()
			if err != nil {
				return err
			}

			base := codegen.SnakeCase(record.RecordName) + "_filters"
			dir := filepath.Dir(src.path())
			if out == "" {
				out = filepath.Join(dir, base+".go")
			}
			if out != "-" {
				opts.Filename = out
			}

			result, err := codegen.NewGenerator(opts).Generate(record)
			if err != nil {
				return err
			}

			if err := writeOutput(cmd, out, result.Source); err != nil {
				return err
			}
			a.log.Info().
				Str("record", result.Descriptor.RecordName).
				Str("table", result.Descriptor.StorageName).
				Int("filters", len(result.Rules)).
				Str("out", out).
				Msg("generated filters")

			if result.GraphQL == nil {
				return nil
			}
			if graphqlOut == "" {
				graphqlOut = filepath.Join(dir, base+".graphql")
			}
			if err := writeOutput(cmd, graphqlOut, result.GraphQL); err != nil {
				return err
			}
			a.log.Info().Str("out", graphqlOut).Msg("generated graphql input")
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default <record>_filters.go beside the input)")
	cmd.Flags().String("package", "", "package clause of the generated file")
	cmd.Flags().String("binding", "", "filter input binding: none, json, form or graphql")
	cmd.Flags().String("dialect", "", "SQL dialect: postgres or sqlite")
	cmd.Flags().Int64("per-page", 0, "default page size for paginated records")
	cmd.Flags().StringVar(&graphqlOut, "graphql-out", "", "GraphQL schema output for the graphql binding")
	return cmd
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
