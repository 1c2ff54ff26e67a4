// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/market-intel/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <report.md>",
	Short: "Validate a report against enterprise quality criteria",
	Long: `Validate scores a markdown report against configurable quality criteria:
length bounds, required sections, formatting, citations, and content quality.
It prints the full validation report and fails when the report does not pass.

Criteria overrides are a flat JSON object matching the criteria fields, e.g.
'{"min_word_count": 800, "required_sections": ["Executive Summary"]}'.
Unknown keys are ignored; a malformed payload falls back to the defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides, _ := cmd.Flags().GetString("criteria")
		minWords, _ := cmd.Flags().GetInt("min-words")
		maxWords, _ := cmd.Flags().GetInt("max-words")
		sections, _ := cmd.Flags().GetStringSlice("sections")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading report: %w", err)
		}

		criteria := validate.ParseCriteria(overrides, os.Stderr)
		if minWords > 0 {
			criteria.MinWordCount = minWords
		}
		if maxWords > 0 {
			criteria.MaxWordCount = maxWords
		}
		if sections != nil {
			criteria.RequiredSections = sections
		}
		verdict := validate.Validate(string(data), criteria)
		fmt.Print(validate.FormatVerdict(verdict))

		if !verdict.IsValid {
			return fmt.Errorf("report failed validation: score %.1f/100, %d issue(s)", verdict.Score, len(verdict.Findings))
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("criteria", "", "JSON object with criteria overrides")
	validateCmd.Flags().Int("min-words", 0, "override the minimum word count")
	validateCmd.Flags().Int("max-words", 0, "override the maximum word count")
	validateCmd.Flags().StringSlice("sections", nil, "override the required section titles")

	rootCmd.AddCommand(validateCmd)
}
