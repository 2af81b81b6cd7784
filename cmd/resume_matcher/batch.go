package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

type batchOptions struct {
	job         string
	resumes     []string
	concurrency int
	out         string
}

// batchEntry is one element of the batch output, in input order.
type batchEntry struct {
	Resume string                `json:"resume"`
	Result *types.AnalysisResult `json:"result"`
}

func newBatchCmd(global *globalOptions) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Score several résumés against one job description",
		Long:  "Analyse every --resume against the --job description concurrently and write the results as a JSON array in input order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.job, "job", "j", "", "Path to the job description file (required)")
	cmd.Flags().StringArrayVarP(&opts.resumes, "resume", "r", nil, "Path to a résumé file (repeatable, at least one)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 4, "Maximum analyses run at once")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (defaults to stdout)")

	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

func runBatch(cmd *cobra.Command, global *globalOptions, opts *batchOptions) error {
	if opts.concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	_, log, err := global.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	jobText, _, err := ingestion.IngestFromFile(opts.job)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	entries := make([]batchEntry, len(opts.resumes))
	g := new(errgroup.Group)
	g.SetLimit(opts.concurrency)
	for i, path := range opts.resumes {
		g.Go(func() error {
			resumeText, _, err := ingestion.IngestResumeFromFile(path)
			if err != nil {
				return fmt.Errorf("failed to read resume: %w", err)
			}
			result, err := analysis.Analyze(resumeText, jobText)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			entries[i] = batchEntry{Resume: path, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("batch analysis completed", zap.Int("resumes", len(entries)), zap.Int("concurrency", opts.concurrency))

	if err := writeJSON(cmd.OutOrStdout(), opts.out, entries); err != nil {
		return err
	}
	if opts.out != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Batch results written to %s\n", opts.out)
	}
	return nil
}
