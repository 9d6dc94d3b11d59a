// Package editor manages an interactive editing session over one resume.
// A session owns its document: callers get clones, the orchestrator works on
// clones, and a proposed change batch only reaches the session's document
// when the user accepts it.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-edit-agent/internal/llm"
	"github.com/jonathan/resume-edit-agent/internal/orchestrator"
	"github.com/jonathan/resume-edit-agent/internal/types"
)

var (
	// ErrNoPending is returned by Accept and Reject when no proposal is open
	ErrNoPending = errors.New("no pending proposal")

	// ErrPendingOpen is returned by Propose and Undo while a proposal awaits review
	ErrPendingOpen = errors.New("a pending proposal must be accepted or rejected first")

	// ErrNothingToUndo is returned by Undo when no accepted batch remains
	ErrNothingToUndo = errors.New("nothing to undo")
)

// proposal holds a reviewed-but-not-yet-accepted run result. The document is
// the mutated clone the tools worked on.
type proposal struct {
	document *types.Resume
	changes  *types.SuggestedChanges
}

// Session drives propose/accept/reject/undo over a single document
type Session struct {
	// MaxIterations caps the tool-use loop per proposal (0 uses the default)
	MaxIterations int

	id      string
	runner  *orchestrator.Runner
	tier    llm.ModelTier
	current *types.Resume
	pending *proposal
	history []*types.Resume
}

// NewSession creates a session over a copy of doc
func NewSession(client llm.Client, doc *types.Resume, tier llm.ModelTier) *Session {
	return &Session{
		id:      uuid.NewString(),
		runner:  orchestrator.NewRunner(client),
		tier:    tier,
		current: doc.Clone(),
	}
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Document returns a copy of the session's current document
func (s *Session) Document() *types.Resume {
	return s.current.Clone()
}

// Pending returns the open change batch, or nil when none is open
func (s *Session) Pending() *types.SuggestedChanges {
	if s.pending == nil {
		return nil
	}
	return s.pending.changes
}

// Propose runs one user request against a clone of the current document.
// When the run produces changes they are held as a pending proposal; runs
// that only answer in prose leave the session unchanged.
func (s *Session) Propose(ctx context.Context, message, selectedText string, onProgress orchestrator.ProgressCallback) (*orchestrator.Outcome, error) {
	if s.pending != nil {
		return nil, ErrPendingOpen
	}

	working := s.current.Clone()
	outcome, err := s.runner.Run(ctx, orchestrator.Options{
		UserMessage:   message,
		SelectedText:  selectedText,
		Document:      working,
		MaxIterations: s.MaxIterations,
		Tier:          s.tier,
		OnProgress:    onProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("proposal run failed: %w", err)
	}

	if outcome.SuggestedChanges != nil {
		s.pending = &proposal{document: working, changes: outcome.SuggestedChanges}
	}
	return outcome, nil
}

// Accept applies the pending proposal. The previous document is kept so the
// batch can be undone.
func (s *Session) Accept() error {
	if s.pending == nil {
		return ErrNoPending
	}
	s.history = append(s.history, s.current)
	s.current = s.pending.document
	s.pending = nil
	return nil
}

// Reject discards the pending proposal
func (s *Session) Reject() error {
	if s.pending == nil {
		return ErrNoPending
	}
	s.pending = nil
	return nil
}

// Undo reverts the most recently accepted batch
func (s *Session) Undo() error {
	if s.pending != nil {
		return ErrPendingOpen
	}
	if len(s.history) == 0 {
		return ErrNothingToUndo
	}
	s.current = s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return nil
}
