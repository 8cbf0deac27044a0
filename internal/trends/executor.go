package trends

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"trenddesk/internal/telemetry"
	"trenddesk/models"
)

// Status is the observable executor state. The executor rests at
// StatusIdle; StatusLoading spans a run from start to settle.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
)

// ExecutionErrorMessage is the only failure text a run ever surfaces.
// The underlying cause goes to the operator log, never to the caller.
const ExecutionErrorMessage = "Something went wrong while fetching trending topics. Please try again."

// Generator is the slice of the generation capability the executor needs.
type Generator interface {
	Generate(ctx context.Context, prompt string, grounded bool) (models.GenerateResult, error)
}

// Recorder receives each successful run for archival. Record runs on the
// settling goroutine, so implementations must return promptly.
type Recorder interface {
	Record(runID string, filters FilterSet, prompt string, result QueryResult)
}

// QueryResult is a settled run's payload: the generated report text plus
// citations in the order the capability returned them.
type QueryResult struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations"`
}

// Snapshot is the executor state at one point in time. A run in flight
// shows StatusLoading with the prior outcome already cleared; a settled
// run shows StatusIdle with exactly one of Result or Error populated.
type Snapshot struct {
	RunID     string       `json:"run_id,omitempty"`
	Status    Status       `json:"status"`
	Result    *QueryResult `json:"result,omitempty"`
	Error     string       `json:"error,omitempty"`
	StartedAt time.Time    `json:"started_at"`
	SettledAt time.Time    `json:"settled_at"`
}

// Executor drives trend query runs against the generation capability.
// Overlapping runs are permitted and deliberately not serialized: each run
// clears the prior outcome when it starts and writes its own when it
// settles, so whichever run settles last owns the final state. Started
// runs cannot be canceled; any timeout comes from the capability itself.
type Executor struct {
	generator Generator
	grounded  bool
	recorder  Recorder
	logger    *log.Logger
	now       func() time.Time

	mu    sync.Mutex
	state Snapshot
}

// NewExecutor builds an executor. recorder may be nil to disable
// archival; a nil logger falls back to a prefixed default.
func NewExecutor(generator Generator, grounded bool, recorder Recorder, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.New(log.Writer(), "[EXECUTOR] ", log.LstdFlags)
	}
	return &Executor{
		generator: generator,
		grounded:  grounded,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
		state:     Snapshot{Status: StatusIdle},
	}
}

// Run composes the prompt for the given filters and starts a query run,
// returning its ID immediately. Progress is observed through Snapshot.
func (e *Executor) Run(filters FilterSet) string {
	runID := uuid.New().String()
	prompt := Compose(filters)
	startedAt := e.now()

	e.mu.Lock()
	e.state = Snapshot{RunID: runID, Status: StatusLoading, StartedAt: startedAt}
	e.mu.Unlock()

	e.logger.Printf("run %s started (category=%q language=%q)", runID, filters.Category, filters.Language)
	go e.execute(runID, filters, prompt, startedAt)
	return runID
}

func (e *Executor) execute(runID string, filters FilterSet, prompt string, startedAt time.Time) {
	generated, err := e.generator.Generate(context.Background(), prompt, e.grounded)
	settledAt := e.now()

	if err != nil {
		e.logger.Printf("run %s failed: %v", runID, err)
		telemetry.QueryRuns.WithLabelValues("failed").Inc()
		e.settle(Snapshot{
			RunID:     runID,
			Status:    StatusIdle,
			Error:     ExecutionErrorMessage,
			StartedAt: startedAt,
			SettledAt: settledAt,
		})
		return
	}

	result := QueryResult{Text: generated.Text, Citations: CitationsFromChunks(generated.Chunks)}
	telemetry.QueryRuns.WithLabelValues("succeeded").Inc()
	e.logger.Printf("run %s succeeded with %d citations", runID, len(result.Citations))
	e.settle(Snapshot{
		RunID:     runID,
		Status:    StatusIdle,
		Result:    &result,
		StartedAt: startedAt,
		SettledAt: settledAt,
	})

	if e.recorder != nil {
		e.recorder.Record(runID, filters, prompt, result)
	}
}

// settle overwrites the executor state wholesale. Runs are not fenced
// against each other: the last one to settle wins.
func (e *Executor) settle(snap Snapshot) {
	e.mu.Lock()
	e.state = snap
	e.mu.Unlock()
}

// Snapshot returns the current executor state.
func (e *Executor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}
