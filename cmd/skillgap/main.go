// Package main provides the entry point for the SkillGap Coach server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgap",
	Short: "SkillGap Coach API server",
	Long:  "SkillGap Coach compares a resume against a job description and reports a match score, overlapping skills with evidence, missing skills, and suggested next steps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
