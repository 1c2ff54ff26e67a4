// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow assembles the six-stage market-intelligence pipeline:
// collect, research, report, quality-gate, edit, translate. Stages form a
// linear chain; collect and translate pause for human approval, and the
// quality gate validates the drafted report without ever stopping the run.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/market-intel/internal/llm"
	"github.com/pdiddy/market-intel/internal/pipeline"
	"github.com/pdiddy/market-intel/internal/validate"
	"github.com/pdiddy/market-intel/pkg/types"
)

// Options configures pipeline assembly. Unset fields fall back to defaults:
// DefaultRoleModels, DefaultCriteria, and time.Now.
type Options struct {
	Engagement types.EngagementConfig
	Models     types.RoleModels
	LLM        types.LLMConfig
	Pipeline   types.PipelineOptions

	// Criteria configures the quality gate. A nil Criteria means
	// DefaultCriteria; a non-nil value is used as given.
	Criteria *types.Criteria

	Approver pipeline.Approver

	// Now supplies the current time for date-context injection.
	Now func() time.Time
}

// Assemble builds the market-intelligence pipeline and reports the model
// assignment for each LLM-backed role. The returned pipeline is intended
// for one run at a time.
func Assemble(opts Options) (*pipeline.Pipeline, []llm.Assignment, error) {
	if opts.Models == nil {
		opts.Models = types.DefaultRoleModels()
	}
	criteria := types.DefaultCriteria()
	if opts.Criteria != nil {
		criteria = *opts.Criteria
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	now := opts.Now()

	var assignments []llm.Assignment
	worker := func(role string) (pipeline.Worker, error) {
		backend, assignment, err := llm.Resolve(role, opts.Models, opts.LLM)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
		return backend, nil
	}

	collect, err := worker("onboarding")
	if err != nil {
		return nil, nil, err
	}
	research, err := worker("research")
	if err != nil {
		return nil, nil, err
	}
	report, err := worker("writing")
	if err != nil {
		return nil, nil, err
	}
	edit, err := worker("editing")
	if err != nil {
		return nil, nil, err
	}
	translate, err := worker("translation")
	if err != nil {
		return nil, nil, err
	}

	gateWorker, gate := qualityGate(criteria, StageReport)

	pipe, err := pipeline.New(opts.Pipeline, opts.Approver,
		pipeline.StageSpec{
			Stage:        types.Stage{Name: StageCollect, Role: "onboarding", RequiresApproval: true},
			Instructions: collectInstructions(opts.Engagement),
			Worker:       collect,
		},
		pipeline.StageSpec{
			Stage:        types.Stage{Name: StageResearch, Role: "research", DependsOn: []string{StageCollect}},
			Instructions: researchInstructions(opts.Engagement, now),
			Worker:       research,
		},
		pipeline.StageSpec{
			Stage:        types.Stage{Name: StageReport, Role: "writing", DependsOn: []string{StageResearch}},
			Instructions: reportInstructions,
			Worker:       report,
		},
		pipeline.StageSpec{
			Stage:        types.Stage{Name: StageQualityGate, Role: "management", DependsOn: []string{StageReport}},
			Instructions: "Validate the drafted report against enterprise quality standards.",
			Worker:       gateWorker,
			Gate:         gate,
		},
		pipeline.StageSpec{
			Stage:        types.Stage{Name: StageEdit, Role: "editing", DependsOn: []string{StageQualityGate}},
			Instructions: editInstructions,
			Worker:       edit,
		},
		pipeline.StageSpec{
			Stage:        types.Stage{Name: StageTranslate, Role: "translation", DependsOn: []string{StageEdit}, RequiresApproval: true},
			Instructions: translateInstructions(opts.Engagement, now),
			Worker:       translate,
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return pipe, assignments, nil
}

// qualityGate returns the quality-gate stage's worker and gate. The worker
// validates the source stage's output and emits the formatted verdict as
// the stage output; the gate feeds a failing verdict's findings into the
// run context for the editing stage. The pair shares the last verdict and
// is therefore bound to a single run at a time.
func qualityGate(criteria types.Criteria, source string) (pipeline.Worker, pipeline.GateFunc) {
	var last types.Verdict

	worker := pipeline.WorkerFunc(func(_ context.Context, _ string, runContext map[string]string) (string, error) {
		content, ok := runContext[source]
		if !ok {
			return "", fmt.Errorf("no %s output to validate", source)
		}
		last = validate.Validate(content, criteria)
		return validate.FormatVerdict(last), nil
	})

	gate := func(string) (map[string]string, bool) {
		if last.IsValid {
			return nil, true
		}
		findings := make([]string, len(last.Findings))
		for i, f := range last.Findings {
			findings[i] = f.Message
		}
		return map[string]string{
			"quality_findings":        strings.Join(findings, "\n"),
			"quality_recommendations": strings.Join(last.Recommendations, "\n"),
		}, false
	}

	return worker, gate
}

// Seed builds the initial run context from the engagement configuration.
func Seed(cfg types.EngagementConfig) map[string]string {
	seed := map[string]string{
		"company":     cfg.Company,
		"competitors": strings.Join(cfg.Competitors, ", "),
		"industry":    cfg.Industry,
	}
	if len(cfg.FocusAreas) > 0 {
		seed["focus_areas"] = strings.Join(cfg.FocusAreas, ", ")
	}
	if cfg.TargetLanguage != "" {
		seed["target_language"] = cfg.TargetLanguage
	}
	return seed
}

// FinalReport returns the delivered report from a completed run: the
// translation output when present, otherwise the edited report.
func FinalReport(run *pipeline.Run) (string, bool) {
	if res, ok := run.Result(StageTranslate); ok && res.Status == types.StageCompleted {
		return res.Output, true
	}
	if res, ok := run.Result(StageEdit); ok && res.Status == types.StageCompleted {
		return res.Output, true
	}
	return "", false
}
