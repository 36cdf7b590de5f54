package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/internal/db"
	"github.com/rpattn/filtergen/pkg/filterquery"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		src     sourceFlags
		sets    []string
		dialect string
		perPage int64
		dsn     string
		execute bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the query a set of filter values produces",
		Long: `Preview builds the query generated code would build for the given filter
values, without compiling anything. Repeat --set for list filters. With --dsn
or --execute the matching row count is fetched from Postgres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := src.load(a)
			if err != nil {
				return err
			}
			desc, err := codegen.Collect(record)
			if err != nil {
				return err
			}

			values, err := parseSets(sets)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("dialect") {
				dialect = a.cfg.Generator.Dialect
			}
			d, err := filterquery.ParseDialect(dialect)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("per-page") {
				perPage = a.cfg.Generator.PerPage
			}

			q, err := codegen.BuildQuery(desc, values, d, perPage)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printQuery(w, d, "query", q.SQL)
			if desc.Pagination {
				printQuery(w, d, "count", q.CountSQL)
			}

			if dsn == "" && !execute {
				return nil
			}
			if d != filterquery.Postgres {
				return errors.New("preview can only execute against postgres")
			}

			dbCfg := a.cfg.Database
			if dsn != "" {
				dbCfg.DSN = dsn
			}
			total, err := count(cmd.Context(), dbCfg, q)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "matches: %d\n", total)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringArrayVar(&sets, "set", nil, "filter value as key=value, repeatable")
	cmd.Flags().StringVar(&dialect, "dialect", "", "SQL dialect: postgres or sqlite")
	cmd.Flags().Int64Var(&perPage, "per-page", 0, "default page size")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Postgres connection string to count matches against")
	cmd.Flags().BoolVar(&execute, "execute", false, "count matches against the configured database")
	return cmd
}

func parseSets(sets []string) (url.Values, error) {
	values := url.Values{}
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set %q, want key=value", s)
		}
		values.Add(strings.TrimSpace(key), value)
	}
	return values, nil
}

// printQuery lists bound arguments under the dialect's parameter syntax:
// $n for Postgres, ?n (SQLite's numbered form) otherwise.
func printQuery(w io.Writer, d filterquery.Dialect, label string, render func() (string, []any)) {
	sql, args := render()
	fmt.Fprintf(w, "%s: %s\n", label, sql)
	mark := "$"
	if d == filterquery.SQLite {
		mark = "?"
	}
	for i, arg := range args {
		fmt.Fprintf(w, "  %s%d = %v\n", mark, i+1, arg)
	}
}

func count(ctx context.Context, cfg db.Config, q *filterquery.Query) (int64, error) {
	conn, err := db.NewConnection(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var total int64
	err = conn.ReadOnly(ctx, func(tx pgx.Tx) error {
		var err error
		total, err = filterquery.Count(ctx, tx, q)
		return err
	})
	return total, err
}
