// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/market-intel/internal/pipeline"
	"github.com/pdiddy/market-intel/pkg/types"
)

func testEngagement() types.EngagementConfig {
	return types.EngagementConfig{
		Company:     "Acme Corp",
		Competitors: []string{"Globex", "Initech"},
		Industry:    "technology",
		FocusAreas:  []string{"financial"},
	}
}

func TestAssembleStageChain(t *testing.T) {
	pipe, assignments, err := Assemble(Options{
		Engagement: testEngagement(),
		Now:        func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	stages := pipe.Stages()
	require.Len(t, stages, 6)

	wantNames := []string{StageCollect, StageResearch, StageReport, StageQualityGate, StageEdit, StageTranslate}
	wantRoles := []string{"onboarding", "research", "writing", "management", "editing", "translation"}
	for i, s := range stages {
		assert.Equal(t, wantNames[i], s.Name)
		assert.Equal(t, wantRoles[i], s.Role)
		if i > 0 {
			require.Len(t, s.DependsOn, 1)
			assert.Equal(t, wantNames[i-1], s.DependsOn[0])
		}
	}

	// Only the first and last stages pause for approval.
	assert.True(t, stages[0].RequiresApproval)
	assert.True(t, stages[5].RequiresApproval)
	for _, s := range stages[1:5] {
		assert.False(t, s.RequiresApproval, s.Name)
	}

	// The quality gate runs deterministically; it is not an LLM role.
	require.Len(t, assignments, 5)
	assignedRoles := make([]string, len(assignments))
	for i, a := range assignments {
		assignedRoles[i] = a.Role
		assert.False(t, a.FellBack, a.Role)
	}
	assert.Equal(t, []string{"onboarding", "research", "writing", "editing", "translation"}, assignedRoles)
}

func TestAssembleUnknownProvider(t *testing.T) {
	models := types.RoleModels{
		"onboarding": {Provider: "mystery", Model: "m"},
	}
	_, _, err := Assemble(Options{Engagement: testEngagement(), Models: models})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestQualityGateFailingReport(t *testing.T) {
	worker, gate := qualityGate(types.DefaultCriteria(), StageReport)

	out, err := worker.Invoke(context.Background(), "", map[string]string{
		StageReport: "# Executive Summary\nShort.\n",
	})
	require.NoError(t, err, "a failing verdict is not a worker error")
	assert.Contains(t, out, "❌ FAILED")

	feedback, passed := gate(out)
	assert.False(t, passed)
	assert.Contains(t, feedback["quality_findings"], "Report is too short")
	assert.NotEmpty(t, feedback["quality_recommendations"])
}

func TestQualityGatePassingReport(t *testing.T) {
	criteria := types.Criteria{MinWordCount: 1, MaxWordCount: 1000}
	worker, gate := qualityGate(criteria, StageReport)

	out, err := worker.Invoke(context.Background(), "", map[string]string{
		StageReport: "Revenue grew 12% during 2025 across all divisions.",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "✅ PASSED")

	feedback, passed := gate(out)
	assert.True(t, passed)
	assert.Nil(t, feedback)
}

func TestQualityGateMissingSource(t *testing.T) {
	worker, _ := qualityGate(types.DefaultCriteria(), StageReport)

	_, err := worker.Invoke(context.Background(), "", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no report output")
}

func TestSeed(t *testing.T) {
	seed := Seed(testEngagement())
	assert.Equal(t, "Acme Corp", seed["company"])
	assert.Equal(t, "Globex, Initech", seed["competitors"])
	assert.Equal(t, "technology", seed["industry"])
	assert.Equal(t, "financial", seed["focus_areas"])
	assert.NotContains(t, seed, "target_language")

	cfg := testEngagement()
	cfg.FocusAreas = nil
	cfg.TargetLanguage = "Estonian"
	seed = Seed(cfg)
	assert.NotContains(t, seed, "focus_areas")
	assert.Equal(t, "Estonian", seed["target_language"])
}

func stubWorker(output string) pipeline.Worker {
	return pipeline.WorkerFunc(func(context.Context, string, map[string]string) (string, error) {
		return output, nil
	})
}

func TestFinalReport(t *testing.T) {
	t.Run("prefers translation", func(t *testing.T) {
		p, err := pipeline.New(types.PipelineOptions{}, nil,
			pipeline.StageSpec{Stage: types.Stage{Name: StageEdit}, Worker: stubWorker("edited")},
			pipeline.StageSpec{Stage: types.Stage{Name: StageTranslate}, Worker: stubWorker("translated")},
		)
		require.NoError(t, err)
		run, err := p.Start(context.Background(), nil)
		require.NoError(t, err)

		out, ok := FinalReport(run)
		require.True(t, ok)
		assert.Equal(t, "translated", out)
	})

	t.Run("falls back to edited report", func(t *testing.T) {
		p, err := pipeline.New(types.PipelineOptions{}, nil,
			pipeline.StageSpec{Stage: types.Stage{Name: StageEdit}, Worker: stubWorker("edited")},
		)
		require.NoError(t, err)
		run, err := p.Start(context.Background(), nil)
		require.NoError(t, err)

		out, ok := FinalReport(run)
		require.True(t, ok)
		assert.Equal(t, "edited", out)
	})

	t.Run("no deliverable", func(t *testing.T) {
		p, err := pipeline.New(types.PipelineOptions{}, nil,
			pipeline.StageSpec{Stage: types.Stage{Name: StageCollect}, Worker: stubWorker("notes")},
		)
		require.NoError(t, err)
		run, err := p.Start(context.Background(), nil)
		require.NoError(t, err)

		_, ok := FinalReport(run)
		assert.False(t, ok)
	})
}

func TestCollectInstructions(t *testing.T) {
	out := collectInstructions(testEngagement())
	assert.Contains(t, out, "Client company: Acme Corp")
	assert.Contains(t, out, "Competitors: Globex, Initech")
	assert.Contains(t, out, "Focus areas: financial")
}

func TestResearchInstructionsEmbedIntelligence(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	out := researchInstructions(testEngagement(), now)

	assert.Contains(t, out, "Current year: 2026")
	assert.Contains(t, out, "# Competitive Intelligence Search Results: Acme Corp")
	assert.Contains(t, out, "# Market Analysis Report: technology")
	assert.Contains(t, out, "### Globex")

	// The same inputs always yield the same instructions.
	assert.Equal(t, out, researchInstructions(testEngagement(), now))
}

func TestTranslateInstructions(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	cfg := testEngagement()
	out := translateInstructions(cfg, now)
	assert.Contains(t, out, "No translation was requested")

	cfg.TargetLanguage = "Estonian"
	out = translateInstructions(cfg, now)
	assert.Contains(t, out, "Translate the final report to Estonian")
	assert.True(t, strings.HasPrefix(out, "Current date: August 31, 2026"))
}
