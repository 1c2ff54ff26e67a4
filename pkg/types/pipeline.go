// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Stage is one unit of pipeline work. Stages are defined once at assembly
// time and immutable afterwards.
type Stage struct {
	// Name uniquely identifies the stage within a pipeline.
	Name string `json:"name" yaml:"name"`

	// DependsOn lists the names of earlier stages whose outputs this
	// stage reads. Dependencies must already be defined when the stage
	// is added.
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`

	// Role is the worker capability the stage runs under (e.g. "research",
	// "writing"). Resolved to a concrete model by the worker layer.
	Role string `json:"role" yaml:"role"`

	// RequiresApproval pauses the run after this stage produces output,
	// until an external caller resumes it.
	RequiresApproval bool `json:"requires_approval,omitempty" yaml:"requires_approval,omitempty"`
}

// StageStatus is the terminal state of one executed stage.
type StageStatus string

const (
	StageCompleted        StageStatus = "completed"
	StageAwaitingApproval StageStatus = "awaiting_approval"
	StageFailed           StageStatus = "failed"
)

// StageResult records the outcome of one stage execution. Results are
// read-only once created; later stages reference them by stage name.
type StageResult struct {
	// Stage is the name of the stage that produced this result.
	Stage string `json:"stage" yaml:"stage"`

	// Output is the stage's output payload.
	Output string `json:"output" yaml:"output"`

	// Status is the stage's terminal status.
	Status StageStatus `json:"status" yaml:"status"`

	// Err holds the failure detail when Status is StageFailed.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunStatus is the overall state of a pipeline run.
type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunRunning   RunStatus = "running"
	RunPaused    RunStatus = "paused"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)
