package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

type validateOptions struct {
	input  string
	schema string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an analysis JSON document against the result schema",
		Long:  "Validate a JSON document against the embedded AnalysisResult schema, or against --schema when given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Path to the JSON document (required)")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Path to a JSON Schema file (defaults to the embedded result schema)")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runValidate(cmd *cobra.Command, opts *validateOptions) error {
	var err error
	if opts.schema != "" {
		err = schemas.ValidateJSON(opts.schema, opts.input)
	} else {
		var data []byte
		data, err = os.ReadFile(opts.input)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("input file not found: %s", opts.input)
			}
			return fmt.Errorf("failed to read %s: %w", opts.input, err)
		}
		err = schemas.ValidateDocument(data)
	}

	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(cmd.OutOrStdout(), "Validation failed:")
		for _, fe := range verr.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("validation failed with %d error(s)", len(verr.Errors))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
