package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// BuildOutcome is the final status of a site build.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// Recorder defines observability hooks for builds and the preview server.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcome)
	SetPagesRendered(n int)
	IncSiteReload(success bool)
	ObserveHTTPRequest(method string, status int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)    {}
func (NoopRecorder) IncStageResult(string, ResultLabel)            {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)            {}
func (NoopRecorder) IncBuildOutcome(BuildOutcome)                  {}
func (NoopRecorder) SetPagesRendered(int)                          {}
func (NoopRecorder) IncSiteReload(bool)                            {}
func (NoopRecorder) ObserveHTTPRequest(string, int, time.Duration) {}
