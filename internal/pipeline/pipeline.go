// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a linear chain of worker stages with explicit data
// dependencies, human-approval checkpoints, and soft quality gates. Stages
// execute strictly one at a time; each stage's output joins an accumulated
// context that later stages read by stage name. A worker error aborts the
// run; a failing quality gate only feeds its findings forward.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pdiddy/market-intel/pkg/types"
)

// Worker executes one stage's work: a long-latency, potentially blocking
// call (typically an LLM invocation). Workers receive a read-only copy of
// the accumulated run context.
type Worker interface {
	Invoke(ctx context.Context, instructions string, runContext map[string]string) (string, error)
}

// WorkerFunc adapts a function to the Worker interface.
type WorkerFunc func(ctx context.Context, instructions string, runContext map[string]string) (string, error)

// Invoke calls f.
func (f WorkerFunc) Invoke(ctx context.Context, instructions string, runContext map[string]string) (string, error) {
	return f(ctx, instructions, runContext)
}

// GateFunc inspects a completed stage's output. The returned feedback
// entries are merged into the run context for downstream stages. A failing
// gate is a signal, never an error: it cannot stop the run.
type GateFunc func(output string) (feedback map[string]string, passed bool)

// ApprovalSignal carries the external continuation input for a paused run.
// Input entries are merged into the run context before execution resumes.
type ApprovalSignal struct {
	Input map[string]string
}

// Approver supplies approval decisions inline, so a run never pauses.
// When no Approver is configured the run pauses at approval stages and the
// caller resumes it explicitly with Resume.
type Approver interface {
	Approve(ctx context.Context, stage, output string) (ApprovalSignal, error)
}

// StageSpec binds a stage definition to its worker, instruction text, and
// optional quality gate.
type StageSpec struct {
	Stage        types.Stage
	Instructions string
	Worker       Worker
	Gate         GateFunc
}

// StageError reports a run-level failure together with the stage that
// caused it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Pipeline is an ordered, immutable chain of stage specifications.
type Pipeline struct {
	specs    []StageSpec
	opts     types.PipelineOptions
	approver Approver
}

// New assembles a pipeline from stage specifications. Stage names must be
// unique, every stage needs a worker, and every dependency must name an
// earlier stage.
func New(opts types.PipelineOptions, approver Approver, specs ...StageSpec) (*Pipeline, error) {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if s.Stage.Name == "" {
			return nil, fmt.Errorf("stage with empty name")
		}
		if seen[s.Stage.Name] {
			return nil, fmt.Errorf("duplicate stage name: %s", s.Stage.Name)
		}
		if s.Worker == nil {
			return nil, fmt.Errorf("stage %s has no worker", s.Stage.Name)
		}
		for _, dep := range s.Stage.DependsOn {
			if !seen[dep] {
				return nil, fmt.Errorf("stage %s depends on undefined stage %s", s.Stage.Name, dep)
			}
		}
		seen[s.Stage.Name] = true
	}
	return &Pipeline{specs: specs, opts: opts, approver: approver}, nil
}

// Stages returns the stage definitions in execution order.
func (p *Pipeline) Stages() []types.Stage {
	stages := make([]types.Stage, len(p.specs))
	for i, s := range p.specs {
		stages[i] = s.Stage
	}
	return stages
}

// Run is the state of one pipeline execution. The controller exclusively
// owns and mutates it; a Run is not safe for concurrent use, and Start and
// Resume calls must not overlap.
type Run struct {
	id            string
	status        types.RunStatus
	pos           int
	results       []types.StageResult
	context       map[string]string
	approvalToken string
}

// ID returns the run's unique identifier.
func (r *Run) ID() string { return r.id }

// Status returns the run's overall status.
func (r *Run) Status() types.RunStatus { return r.status }

// Results returns the stage results in execution order.
func (r *Run) Results() []types.StageResult {
	out := make([]types.StageResult, len(r.results))
	copy(out, r.results)
	return out
}

// Result returns the result for a stage name.
func (r *Run) Result(stage string) (types.StageResult, bool) {
	for _, res := range r.results {
		if res.Stage == stage {
			return res, true
		}
	}
	return types.StageResult{}, false
}

// Context returns a copy of the accumulated run context.
func (r *Run) Context() map[string]string {
	return copyContext(r.context)
}

// ApprovalToken returns the continuation token for a paused run, or ""
// when the run is not awaiting approval.
func (r *Run) ApprovalToken() string { return r.approvalToken }

// AwaitingStage returns the name of the stage awaiting approval, or "".
func (r *Run) AwaitingStage() string {
	if r.status != types.RunPaused || len(r.results) == 0 {
		return ""
	}
	last := r.results[len(r.results)-1]
	if last.Status != types.StageAwaitingApproval {
		return ""
	}
	return last.Stage
}

// Start executes the pipeline from the first stage. The seed entries become
// the initial run context. Start returns a paused run when it reaches an
// approval stage and no Approver is configured; the caller resumes it with
// Resume. A worker error fails the run and is returned as a StageError.
func (p *Pipeline) Start(ctx context.Context, seed map[string]string) (*Run, error) {
	run := &Run{
		id:      uuid.New().String(),
		status:  types.RunPending,
		context: copyContext(seed),
	}
	if run.context == nil {
		run.context = make(map[string]string)
	}
	err := p.advance(ctx, run)
	return run, err
}

// Resume continues a paused run. The token must match the one issued when
// the run paused; the signal's input entries are merged into the run
// context. The awaiting stage is marked completed without re-running.
func (p *Pipeline) Resume(ctx context.Context, run *Run, token string, signal ApprovalSignal) error {
	if run.status != types.RunPaused {
		return fmt.Errorf("run %s is %s, not paused", run.id, run.status)
	}
	if token != run.approvalToken {
		return fmt.Errorf("approval token does not match run %s", run.id)
	}

	run.results[len(run.results)-1].Status = types.StageCompleted
	for k, v := range signal.Input {
		run.context[k] = v
	}
	run.approvalToken = ""
	run.pos++

	return p.advance(ctx, run)
}

// advance executes stages from the current position until the run
// completes, pauses, or fails. Cancellation is honored at stage
// boundaries only: an in-flight worker call runs to completion or error.
func (p *Pipeline) advance(ctx context.Context, run *Run) error {
	run.status = types.RunRunning

	for run.pos < len(p.specs) {
		spec := p.specs[run.pos]
		name := spec.Stage.Name

		if err := ctx.Err(); err != nil {
			run.status = types.RunFailed
			return &StageError{Stage: name, Err: err}
		}
		if err := run.checkDependencies(spec.Stage); err != nil {
			run.status = types.RunFailed
			return &StageError{Stage: name, Err: err}
		}

		output, err := spec.Worker.Invoke(ctx, spec.Instructions, copyContext(run.context))
		if err != nil {
			run.results = append(run.results, types.StageResult{
				Stage:  name,
				Status: types.StageFailed,
				Err:    err.Error(),
			})
			run.status = types.RunFailed
			return &StageError{Stage: name, Err: err}
		}

		run.context[name] = output

		if spec.Gate != nil {
			feedback, _ := spec.Gate(output)
			for k, v := range feedback {
				run.context[k] = v
			}
		}

		if spec.Stage.RequiresApproval {
			if p.approver != nil {
				if err := p.approveInline(ctx, run, name, output); err != nil {
					run.results = append(run.results, types.StageResult{
						Stage:  name,
						Status: types.StageFailed,
						Output: output,
						Err:    err.Error(),
					})
					run.status = types.RunFailed
					return &StageError{Stage: name, Err: err}
				}
			} else {
				run.results = append(run.results, types.StageResult{
					Stage:  name,
					Output: output,
					Status: types.StageAwaitingApproval,
				})
				run.approvalToken = uuid.New().String()
				run.status = types.RunPaused
				return nil
			}
		}

		run.results = append(run.results, types.StageResult{
			Stage:  name,
			Output: output,
			Status: types.StageCompleted,
		})
		run.pos++
	}

	run.status = types.RunCompleted
	return nil
}

// approveInline asks the configured Approver for a decision, bounded by the
// approval timeout when one is set.
func (p *Pipeline) approveInline(ctx context.Context, run *Run, stage, output string) error {
	if p.opts.ApprovalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.ApprovalTimeout)
		defer cancel()
	}
	signal, err := p.approver.Approve(ctx, stage, output)
	if err != nil {
		return fmt.Errorf("approval: %w", err)
	}
	for k, v := range signal.Input {
		run.context[k] = v
	}
	return nil
}

// checkDependencies verifies every declared upstream stage has a completed
// result.
func (r *Run) checkDependencies(stage types.Stage) error {
	for _, dep := range stage.DependsOn {
		res, ok := r.Result(dep)
		if !ok {
			return fmt.Errorf("dependency %s has no result", dep)
		}
		if res.Status != types.StageCompleted {
			return fmt.Errorf("dependency %s is %s", dep, res.Status)
		}
	}
	return nil
}

func copyContext(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
