// Package metrics records build and HTTP metrics.
//
// Components receive a Recorder through their options and default to
// NoopRecorder, so nothing needs a nil check. The preview server swaps
// in a PrometheusRecorder and exposes it on /metrics.
package metrics
