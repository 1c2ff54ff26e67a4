// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/market-intel/internal/pipeline"
	"github.com/pdiddy/market-intel/pkg/types"
)

// EngagementFile is the on-disk definition of an engagement: the client
// company and competitors, plus optional model and criteria overrides. The
// analyst writes one file per engagement and reruns it without retyping
// flags. Criteria, when present, is complete: file overrides have already
// been layered onto the defaults.
type EngagementFile struct {
	Engagement types.EngagementConfig `yaml:"engagement"`
	Models     types.RoleModels       `yaml:"models,omitempty"`
	Criteria   *types.Criteria        `yaml:"criteria,omitempty"`
}

// criteriaOverrides is the raw criteria block of an engagement file. Pointer
// fields distinguish an unset key from an explicit zero or false, so a
// partial block layers onto the defaults instead of replacing them.
type criteriaOverrides struct {
	MinWordCount     *int     `yaml:"min_word_count"`
	MaxWordCount     *int     `yaml:"max_word_count"`
	RequiredSections []string `yaml:"required_sections"`
	MinSectionLength *int     `yaml:"min_section_length"`
	CheckCitations   *bool    `yaml:"check_citations"`
	CheckFormatting  *bool    `yaml:"check_formatting"`
}

func (o *criteriaOverrides) apply(c *types.Criteria) {
	if o.MinWordCount != nil {
		c.MinWordCount = *o.MinWordCount
	}
	if o.MaxWordCount != nil {
		c.MaxWordCount = *o.MaxWordCount
	}
	if o.RequiredSections != nil {
		c.RequiredSections = o.RequiredSections
	}
	if o.MinSectionLength != nil {
		c.MinSectionLength = *o.MinSectionLength
	}
	if o.CheckCitations != nil {
		c.CheckCitations = *o.CheckCitations
	}
	if o.CheckFormatting != nil {
		c.CheckFormatting = *o.CheckFormatting
	}
}

// engagementFileYAML is the on-disk schema before criteria merging.
type engagementFileYAML struct {
	Engagement types.EngagementConfig `yaml:"engagement"`
	Models     types.RoleModels       `yaml:"models,omitempty"`
	Criteria   *criteriaOverrides     `yaml:"criteria,omitempty"`
}

// ReadEngagementFile loads and validates an engagement definition. A partial
// criteria block is merged onto DefaultCriteria key by key.
func ReadEngagementFile(path string) (*EngagementFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading engagement file: %w", err)
	}
	var raw engagementFileYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing engagement file: %w", err)
	}
	if raw.Engagement.Company == "" {
		return nil, fmt.Errorf("engagement file %s: company is required", path)
	}
	if len(raw.Engagement.Competitors) == 0 {
		return nil, fmt.Errorf("engagement file %s: at least one competitor is required", path)
	}

	ef := &EngagementFile{Engagement: raw.Engagement, Models: raw.Models}
	if raw.Criteria != nil {
		criteria := types.DefaultCriteria()
		raw.Criteria.apply(&criteria)
		ef.Criteria = &criteria
	}
	return ef, nil
}

// RunRecord is the on-disk record of one pipeline run: status, per-stage
// results, and the delivered report.
type RunRecord struct {
	RunID      string                 `yaml:"run_id"`
	Status     types.RunStatus        `yaml:"status"`
	Engagement types.EngagementConfig `yaml:"engagement"`
	Stages     []types.StageResult    `yaml:"stages"`
	Report     string                 `yaml:"report,omitempty"`
	Timestamp  time.Time              `yaml:"timestamp"`
}

// WriteRunRecord saves a run's outcome to a YAML file for audit and rerun
// comparison.
func WriteRunRecord(path string, cfg types.EngagementConfig, run *pipeline.Run) error {
	rec := RunRecord{
		RunID:      run.ID(),
		Status:     run.Status(),
		Engagement: cfg,
		Stages:     run.Results(),
		Timestamp:  time.Now().UTC(),
	}
	if report, ok := FinalReport(run); ok {
		rec.Report = report
	}

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("marshaling run record: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
