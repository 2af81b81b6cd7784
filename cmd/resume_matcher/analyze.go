package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/observability"
)

type analyzeOptions struct {
	resume  string
	job     string
	jobURL  string
	out     string
	verbose bool
}

func newAnalyzeCmd(global *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score one résumé against one job description",
		Long:  "Read a résumé and a job description (file or URL), run the matching engine and write the analysis as JSON.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to the résumé text or HTML file (required)")
	cmd.Flags().StringVarP(&opts.job, "job", "j", "", "Path to the job description file (mutually exclusive with --job-url)")
	cmd.Flags().StringVar(&opts.jobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a readable summary to stderr")

	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

func runAnalyze(cmd *cobra.Command, global *globalOptions, opts *analyzeOptions) error {
	if opts.job == "" && opts.jobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}
	if opts.job != "" && opts.jobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	_, log, err := global.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	resumeText, resumeMeta, err := ingestion.IngestResumeFromFile(opts.resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	var jobMeta *ingestion.Metadata
	if opts.job != "" {
		jobText, jobMeta, err = ingestion.IngestFromFile(opts.job)
	} else {
		jobText, jobMeta, err = ingestion.IngestFromURL(cmd.Context(), fetch.NewClient(0), opts.jobURL)
	}
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	log.Debug("inputs loaded",
		zap.String("resume", resumeMeta.Source),
		zap.Int("resume_chars", resumeMeta.Chars),
		zap.String("job", jobMeta.Source),
		zap.Int("job_chars", jobMeta.Chars),
	)

	result, err := analysis.Analyze(resumeText, jobText)
	if err != nil {
		return err
	}
	log.Info("analysis completed", logger.AnalysisFields(result)...)

	if opts.verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintAnalysis(result)
	}

	if err := writeJSON(cmd.OutOrStdout(), opts.out, result); err != nil {
		return err
	}
	if opts.out != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Analysis written to %s\n", opts.out)
	}
	return nil
}
