package workspace

import (
	"log/slog"
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
)

var rename = os.Rename

// Stage is an in-progress output directory.
type Stage struct {
	outputDir string
	stageDir  string
}

// Begin creates a fresh staging directory for outputDir.
func Begin(outputDir string) (*Stage, error) {
	outputDir = filepath.Clean(outputDir)
	stage := outputDir + "_stage"
	if err := os.RemoveAll(stage); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to clear stale staging directory").
			WithContext("path", stage).
			Build()
	}
	if err := os.MkdirAll(stage, 0o750); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to create staging directory").
			WithContext("path", stage).
			Build()
	}
	slog.Debug("Initialized staging directory", logfields.Path(stage), slog.String("final", outputDir))
	return &Stage{outputDir: outputDir, stageDir: stage}, nil
}

// Path returns the directory to write into.
func (s *Stage) Path() string {
	return s.stageDir
}

// OutputDir returns the final location.
func (s *Stage) OutputDir() string {
	return s.outputDir
}

// Promote replaces the output directory with the staged one.
func (s *Stage) Promote() error {
	if s.stageDir == "" {
		return ferrors.InternalError("staging directory already finalized").Build()
	}
	if _, err := os.Stat(s.stageDir); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "staging directory missing").
			WithContext("path", s.stageDir).
			Build()
	}

	prev := s.outputDir + ".prev"
	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous backup", logfields.Path(prev), logfields.Error(err))
	}
	backedUp := false
	if _, err := os.Stat(s.outputDir); err == nil {
		if err := rename(s.outputDir, prev); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to back up existing output").
				WithContext("path", s.outputDir).
				Build()
		}
		backedUp = true
	}
	if err := rename(s.stageDir, s.outputDir); err != nil {
		if backedUp {
			if rerr := rename(prev, s.outputDir); rerr != nil {
				slog.Error("Failed to restore previous output", logfields.Path(prev), logfields.Error(rerr))
			}
		}
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to promote staging directory").
			WithContext("path", s.outputDir).
			Build()
	}
	s.stageDir = ""

	if err := os.RemoveAll(prev); err != nil {
		slog.Warn("Failed to remove previous backup", logfields.Path(prev), logfields.Error(err))
	}
	slog.Debug("Promoted staging directory", logfields.Path(s.outputDir))
	return nil
}

// Abort discards the staged output. Calling it after Promote is a no-op.
func (s *Stage) Abort() {
	if s.stageDir == "" {
		return
	}
	if err := os.RemoveAll(s.stageDir); err != nil {
		slog.Warn("Failed to remove staging directory", logfields.Path(s.stageDir), logfields.Error(err))
	}
	s.stageDir = ""
}
