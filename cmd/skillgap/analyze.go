package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillgap-coach/internal/analysis"
	"github.com/jonathan/skillgap-coach/internal/config"
	"github.com/jonathan/skillgap-coach/internal/ingestion"
	"github.com/jonathan/skillgap-coach/internal/llm"
	"github.com/jonathan/skillgap-coach/internal/skills"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeJobURL     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a one-shot analysis from local files or a job posting URL",
	Long:  `Analyze a resume text file against a job description (from a file or fetched from a URL) and print the result as JSON. No database is involved.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of a job posting to fetch")
	_ = analyzeCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if (analyzeJobPath == "") == (analyzeJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	resumeBytes, err := os.ReadFile(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	var jobDescription string
	if analyzeJobPath != "" {
		jobBytes, err := os.ReadFile(analyzeJobPath)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		jobDescription = string(jobBytes)
	} else {
		posting, err := ingestion.FromURL(cmd.Context(), analyzeJobURL)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
		jobDescription = posting.Text
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	opts := []analysis.Option{analysis.WithLLMTimeout(cfg.LLMTimeout)}
	if cfg.LLMEnabled() {
		client, err := llm.NewClient(cmd.Context(), nil, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		opts = append(opts, analysis.WithCoach(client))
	}

	analyzer := analysis.New(skills.NewExtractor(nil), opts...)
	result := analyzer.Analyze(cmd.Context(), string(resumeBytes), jobDescription)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
