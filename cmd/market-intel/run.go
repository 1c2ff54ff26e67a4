// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/market-intel/internal/pipeline"
	"github.com/pdiddy/market-intel/internal/workflow"
	"github.com/pdiddy/market-intel/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the market-intelligence pipeline for one engagement",
	Long: `Run executes the full six-stage workflow: collect, research, report,
quality-gate, edit, and translate. The collect and translate stages prompt
for approval on stdin unless --auto-approve is set. The final report is
written to --output or stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		competitors, _ := cmd.Flags().GetStringSlice("competitors")
		industry, _ := cmd.Flags().GetString("industry")
		focus, _ := cmd.Flags().GetStringSlice("focus")
		language, _ := cmd.Flags().GetString("language")
		autoApprove, _ := cmd.Flags().GetBool("auto-approve")
		output, _ := cmd.Flags().GetString("output")
		engagementFile, _ := cmd.Flags().GetString("engagement")
		record, _ := cmd.Flags().GetString("record")

		var (
			engagement types.EngagementConfig
			models     types.RoleModels
			criteria   *types.Criteria
		)
		if engagementFile != "" {
			ef, err := workflow.ReadEngagementFile(engagementFile)
			if err != nil {
				return err
			}
			engagement = ef.Engagement
			models = ef.Models
			criteria = ef.Criteria
		} else {
			if company == "" {
				return fmt.Errorf("--company is required")
			}
			if len(competitors) == 0 {
				return fmt.Errorf("--competitors is required")
			}
			engagement = types.EngagementConfig{
				Company:        company,
				Competitors:    competitors,
				Industry:       industry,
				FocusAreas:     focus,
				TargetLanguage: language,
			}
		}

		var approver pipeline.Approver = &stdinApprover{in: bufio.NewReader(os.Stdin), out: os.Stderr}
		if autoApprove {
			approver = autoApprover{}
		}

		pipe, assignments, err := workflow.Assemble(workflow.Options{
			Engagement: engagement,
			Models:     models,
			Criteria:   criteria,
			LLM: types.LLMConfig{
				MaxRetries: viper.GetInt("llm.max_retries"),
				APIKeys: map[string]string{
					"openai":    secretDefault("openai-api-key", viper.GetString("openai_api_key")),
					"anthropic": secretDefault("anthropic-api-key", viper.GetString("anthropic_api_key")),
				},
			},
			Pipeline: types.PipelineOptions{
				ApprovalTimeout: viper.GetDuration("approval_timeout"),
			},
			Approver: approver,
		})
		if err != nil {
			return fmt.Errorf("assembling pipeline: %w", err)
		}

		for _, a := range assignments {
			note := ""
			if a.FellBack {
				note = " (default model)"
			}
			fmt.Fprintf(os.Stderr, "role %-12s -> %s/%s%s\n", a.Role, a.Config.Provider, a.Config.Model, note)
		}

		run, err := pipe.Start(context.Background(), workflow.Seed(engagement))
		if record != "" && run != nil {
			if recErr := workflow.WriteRunRecord(record, engagement, run); recErr != nil {
				fmt.Fprintf(os.Stderr, "warning: writing run record: %v\n", recErr)
			}
		}
		if err != nil {
			return fmt.Errorf("pipeline run %s: %w", run.ID(), err)
		}

		report, ok := workflow.FinalReport(run)
		if !ok {
			return fmt.Errorf("run %s finished with status %s but produced no report", run.ID(), run.Status())
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(report), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Report written to %s\n", output)
			return nil
		}
		fmt.Println(report)
		return nil
	},
}

// stdinApprover prompts on the terminal at human-approval stages. An empty
// or "y" answer approves; anything else declines and fails the run.
type stdinApprover struct {
	in  *bufio.Reader
	out *os.File
}

func (a *stdinApprover) Approve(ctx context.Context, stage, output string) (pipeline.ApprovalSignal, error) {
	fmt.Fprintf(a.out, "\n--- %s output ---\n%s\n--- end of %s output ---\n", stage, output, stage)
	fmt.Fprintf(a.out, "Approve %s and continue? [Y/n] ", stage)

	type answer struct {
		text string
		err  error
	}
	ch := make(chan answer, 1)
	go func() {
		line, err := a.in.ReadString('\n')
		ch <- answer{text: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return pipeline.ApprovalSignal{}, ctx.Err()
	case ans := <-ch:
		if ans.err != nil {
			return pipeline.ApprovalSignal{}, ans.err
		}
		switch strings.ToLower(strings.TrimSpace(ans.text)) {
		case "", "y", "yes":
			return pipeline.ApprovalSignal{}, nil
		default:
			return pipeline.ApprovalSignal{}, fmt.Errorf("declined by operator")
		}
	}
}

// autoApprover approves every checkpoint without interaction.
type autoApprover struct{}

func (autoApprover) Approve(context.Context, string, string) (pipeline.ApprovalSignal, error) {
	return pipeline.ApprovalSignal{}, nil
}

func init() {
	runCmd.Flags().String("company", "", "client company name (required)")
	runCmd.Flags().StringSlice("competitors", nil, "competitor companies to analyze (required)")
	runCmd.Flags().String("industry", "", "industry sector for market analysis")
	runCmd.Flags().StringSlice("focus", nil, "focus areas: financial, products, strategy, market, news")
	runCmd.Flags().String("language", "", "target language for an optional translation")
	runCmd.Flags().Bool("auto-approve", false, "approve all human checkpoints automatically")
	runCmd.Flags().String("output", "", "write the final report to this file instead of stdout")
	runCmd.Flags().String("engagement", "", "load the engagement definition from a YAML file")
	runCmd.Flags().String("record", "", "write a YAML run record to this file")

	rootCmd.AddCommand(runCmd)
}
