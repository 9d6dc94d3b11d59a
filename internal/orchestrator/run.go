// Package orchestrator drives the bounded multi-turn tool-use conversation
// that turns one user request into a reviewed change batch. One Run processes
// one request end to end: it owns the transcript, executes tool calls
// sequentially in the order the model emitted them, and aggregates every
// mutation into a single ordered batch.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-edit-agent/internal/llm"
	"github.com/jonathan/resume-edit-agent/internal/prompts"
	"github.com/jonathan/resume-edit-agent/internal/tools"
	"github.com/jonathan/resume-edit-agent/internal/types"
)

const (
	// DefaultMaxIterations bounds the tool-use loop. Exhausting it is not an
	// error; the run returns whatever prose and changes accumulated.
	DefaultMaxIterations = 10

	// descriptionLimit truncates the batch description (a display hint only)
	descriptionLimit = 100

	promptFile = "editor.json"
)

// ProgressEvent reports one step of a run for verbose output
type ProgressEvent struct {
	Iteration int    `json:"iteration"`
	Kind      string `json:"kind"` // "model_turn", "tool_call", "tool_result"
	Tool      string `json:"tool,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ProgressCallback is called as the run progresses
type ProgressCallback func(event ProgressEvent)

// Options configures one orchestration run. Document must be a copy owned by
// this run: tools mutate it in place.
type Options struct {
	UserMessage   string        `validate:"required"`
	SelectedText  string        `validate:"-"`
	Document      *types.Resume `validate:"required"`
	MaxIterations int           `validate:"gte=0,lte=50"`
	Tier          llm.ModelTier `validate:"-"`
	OnProgress    ProgressCallback
}

// Outcome is the result of one run: the user-facing message and, when the
// model mutated the document, the ordered change batch
type Outcome struct {
	Message          string                  `json:"message"`
	SuggestedChanges *types.SuggestedChanges `json:"suggested_changes"`
	BudgetExhausted  bool                    `json:"budget_exhausted,omitempty"`
	Iterations       int                     `json:"iterations"`
}

var validate = validator.New()

// Runner wires a model client to the tool catalog and executor. It holds no
// per-run state and may be shared across runs.
type Runner struct {
	client   llm.Client
	catalog  *tools.Catalog
	executor *tools.Executor
}

// NewRunner creates a runner over a model client
func NewRunner(client llm.Client) *Runner {
	catalog := tools.NewCatalog()
	return &Runner{
		client:   client,
		catalog:  catalog,
		executor: tools.NewExecutor(catalog),
	}
}

// Run drives the conversation until the model stops calling tools or the
// iteration budget is exhausted. A provider failure aborts the run and no
// change batch is returned.
func (r *Runner) Run(ctx context.Context, opts Options) (*Outcome, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid run options: %w", err)
	}

	budget := opts.MaxIterations
	if budget == 0 {
		budget = DefaultMaxIterations
	}

	system, err := prompts.Get(promptFile, "system")
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}

	userText := opts.UserMessage
	if opts.SelectedText != "" {
		selection, err := prompts.Get(promptFile, "selection")
		if err != nil {
			return nil, fmt.Errorf("failed to load selection prompt: %w", err)
		}
		userText += "\n\n" + prompts.Format(selection, map[string]string{"Selection": opts.SelectedText})
	}

	transcript := []llm.Message{llm.UserText(userText)}
	specs := r.catalog.Specs()

	var changes []types.ChangeRecord
	var message string
	exhausted := true

	iterations := 0
	for i := 0; i < budget; i++ {
		iterations = i + 1

		resp, err := r.client.Generate(ctx, llm.Request{
			System:   system,
			Tools:    specs,
			Messages: transcript,
			Tier:     opts.Tier,
		})
		if err != nil {
			return nil, fmt.Errorf("model call failed on iteration %d: %w", iterations, err)
		}

		emit(opts.OnProgress, ProgressEvent{Iteration: iterations, Kind: "model_turn", Message: resp.Text()})

		calls := resp.ToolCalls()
		if len(calls) == 0 {
			// Terminal turn: its prose is the user-facing message.
			message = resp.Text()
			exhausted = false
			break
		}

		// Prose in a turn that also calls tools is superseded; keep it only
		// as a best-effort message in case the budget runs out here.
		message = resp.Text()

		transcript = append(transcript, llm.Message{Role: llm.RoleAssistant, Blocks: resp.Blocks})

		results := make([]llm.Block, 0, len(calls))
		for _, call := range calls {
			emit(opts.OnProgress, ProgressEvent{Iteration: iterations, Kind: "tool_call", Tool: call.Name})

			out := r.executor.Execute(opts.Document, call)
			changes = append(changes, out.Changes...)

			content := out.ResultJSON()
			emit(opts.OnProgress, ProgressEvent{Iteration: iterations, Kind: "tool_result", Tool: call.Name, Message: content})

			results = append(results, llm.ToolResultBlock{
				CallID:   call.ID,
				ToolName: call.Name,
				Content:  content,
				IsError:  out.IsError(),
			})
		}
		transcript = append(transcript, llm.Message{Role: llm.RoleUser, Blocks: results})
	}

	outcome := &Outcome{
		Message:         message,
		BudgetExhausted: exhausted,
		Iterations:      iterations,
	}
	if len(changes) > 0 {
		outcome.SuggestedChanges = &types.SuggestedChanges{
			Type:        types.SuggestionType,
			Description: firstLine(message, descriptionLimit),
			Changes:     changes,
		}
	}
	return outcome, nil
}

func emit(cb ProgressCallback, event ProgressEvent) {
	if cb != nil {
		cb(event)
	}
}

// firstLine returns the first line of s truncated to limit runes
func firstLine(s string, limit int) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}
