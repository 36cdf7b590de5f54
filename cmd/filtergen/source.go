package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rpattn/filtergen/internal/codegen"
	"github.com/rpattn/filtergen/internal/descriptor"
	"github.com/rpattn/filtergen/internal/domain"
	"github.com/rpattn/filtergen/internal/goparse"
)

// sourceFlags selects the record a command works on.
type sourceFlags struct {
	descriptor string
	source     string
	typeName   string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.descriptor, "descriptor", "d", "", "YAML record descriptor")
	cmd.Flags().StringVarP(&s.source, "source", "s", "", "Go file declaring the record struct")
	cmd.Flags().StringVarP(&s.typeName, "type", "t", "", "record struct name, with --source")
	cmd.MarkFlagsMutuallyExclusive("descriptor", "source")
	cmd.MarkFlagsOneRequired("descriptor", "source")
	cmd.MarkFlagsRequiredTogether("source", "type")
}

// path is the input file the record was read from.
func (s *sourceFlags) path() string {
	if s.descriptor != "" {
		return s.descriptor
	}
	return s.source
}

func (s *sourceFlags) load(a *app) (domain.RecordSource, error) {
	var (
		src domain.RecordSource
		err error
	)
	switch {
	case s.descriptor != "":
		src, err = descriptor.Load(s.descriptor)
	case s.source != "":
		src, err = goparse.ParseFile(s.source, s.typeName)
	default:
		err = errors.New("one of --descriptor or --source is required")
	}
	if err != nil {
		return domain.RecordSource{}, err
	}

	for _, f := range src.Fields {
		if unknown := codegen.UnknownTokens(f.Filter); len(unknown) > 0 {
			a.log.Debug().
				Str("record", src.RecordName).
				Str("field", f.Name).
				Strs("keywords", unknown).
				Msg("ignoring unknown filter keywords")
		}
	}
	return src, nil
}
