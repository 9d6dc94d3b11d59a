package tools

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-edit-agent/internal/llm"
	"github.com/jonathan/resume-edit-agent/internal/schemas"
	"github.com/jonathan/resume-edit-agent/internal/types"
)

// ErrorResult is the structured failure payload returned across the tool
// boundary. Failures are data, never panics or Go errors, so the
// orchestration loop can feed them back and let the model self-correct.
type ErrorResult struct {
	Error string `json:"error"`
}

// EditResult is the success payload of the three mutating tools
type EditResult struct {
	Success  bool   `json:"success"`
	Location string `json:"location"`
	Original string `json:"original"`
	Updated  string `json:"updated"`
}

// SkillsPayload is the read_section payload for the skills section
type SkillsPayload struct {
	Skills string `json:"skills"`
}

// Outcome is the executor's response to one tool call: a result payload
// (tool-specific, or ErrorResult) plus the change records produced by a
// successful mutation. Read-only tools never produce changes.
type Outcome struct {
	Result  any
	Changes []types.ChangeRecord
}

// IsError reports whether the outcome carries an ErrorResult payload
func (o Outcome) IsError() bool {
	_, ok := o.Result.(ErrorResult)
	return ok
}

// ResultJSON serializes the result payload for the transcript
func (o Outcome) ResultJSON() string {
	data, err := json.Marshal(o.Result)
	if err != nil {
		return fmt.Sprintf(`{"error":"failed to serialize tool result: %v"}`, err)
	}
	return string(data)
}

// Executor validates tool calls against the catalog and applies them to a
// document. It is stateless; the document passed to Execute is mutated in
// place, which is safe because each orchestration run owns its own copy.
type Executor struct {
	catalog *Catalog
}

// NewExecutor creates an executor over a catalog
func NewExecutor(catalog *Catalog) *Executor {
	return &Executor{catalog: catalog}
}

// Execute runs one tool call against the document. On any failure the
// document is left untouched and the outcome carries an ErrorResult.
func (e *Executor) Execute(doc *types.Resume, call llm.ToolUseBlock) Outcome {
	def, ok := e.catalog.Get(call.Name)
	if !ok {
		return errorf("unknown tool %q (available: %v)", call.Name, e.catalog.Names())
	}

	if err := schemas.ValidateArgs(def.InputSchema, call.Args); err != nil {
		return errorf("%s: %v", call.Name, err)
	}

	switch call.Name {
	case ToolReadResume:
		return Outcome{Result: doc}
	case ToolReadSection:
		return e.readSection(doc, call.Args)
	case ToolEditSectionField:
		return e.editSectionField(doc, call.Args)
	case ToolEditBullet:
		return e.editBullet(doc, call.Args)
	case ToolAddBullet:
		return e.addBullet(doc, call.Args)
	case ToolSearchResume:
		return e.searchResume(doc, call.Args)
	case ToolGetResumeStats:
		return Outcome{Result: CollectStats(doc)}
	default:
		return errorf("tool %q has no handler", call.Name)
	}
}

func (e *Executor) readSection(doc *types.Resume, raw json.RawMessage) Outcome {
	var args ReadSectionArgs
	if out, ok := decode(raw, &args); !ok {
		return out
	}

	section, err := types.ParseSection(args.Section)
	if err != nil {
		return errorf("%v", err)
	}

	switch section {
	case types.SectionHeader:
		return Outcome{Result: doc.Header()}
	case types.SectionSkills:
		return Outcome{Result: SkillsPayload{Skills: doc.Skills}}
	case types.SectionEducation:
		return Outcome{Result: doc.Education}
	case types.SectionExperience:
		return Outcome{Result: doc.Experience}
	case types.SectionProjects:
		return Outcome{Result: doc.Projects}
	default:
		return Outcome{Result: doc.Leadership}
	}
}

func (e *Executor) editSectionField(doc *types.Resume, raw json.RawMessage) Outcome {
	var args EditSectionFieldArgs
	if out, ok := decode(raw, &args); !ok {
		return out
	}

	section, err := types.ParseSection(args.Section)
	if err != nil {
		return errorf("%v", err)
	}

	index := 0
	if section.IsList() {
		if args.Index == nil {
			return errorf("index is required for section %q", section)
		}
		index = *args.Index
	}

	ref, err := types.FieldRef(doc, section, args.Field, index)
	if err != nil {
		return errorf("%v", err)
	}

	original := *ref
	*ref = args.NewValue

	path := types.FieldPath(section, args.Field, index)
	return editOutcome(path, original, args.NewValue)
}

func (e *Executor) editBullet(doc *types.Resume, raw json.RawMessage) Outcome {
	var args EditBulletArgs
	if out, ok := decode(raw, &args); !ok {
		return out
	}

	section, err := types.ParseSection(args.Section)
	if err != nil {
		return errorf("%v", err)
	}

	bullets, err := types.BulletsRef(doc, section, args.EntryIndex)
	if err != nil {
		return errorf("%v", err)
	}
	if args.BulletIndex < 0 || args.BulletIndex >= len(*bullets) {
		return errorf("bullet_index %d out of range for %s[%d] (%d bullets)", args.BulletIndex, section, args.EntryIndex, len(*bullets))
	}

	original := (*bullets)[args.BulletIndex]
	(*bullets)[args.BulletIndex] = args.NewText

	path := types.BulletPath(section, args.EntryIndex, args.BulletIndex)
	return editOutcome(path, original, args.NewText)
}

func (e *Executor) addBullet(doc *types.Resume, raw json.RawMessage) Outcome {
	var args AddBulletArgs
	if out, ok := decode(raw, &args); !ok {
		return out
	}

	section, err := types.ParseSection(args.Section)
	if err != nil {
		return errorf("%v", err)
	}

	bullets, err := types.BulletsRef(doc, section, args.EntryIndex)
	if err != nil {
		return errorf("%v", err)
	}

	index := len(*bullets)
	*bullets = append(*bullets, args.Text)

	path := types.BulletPath(section, args.EntryIndex, index)
	return editOutcome(path, "", args.Text)
}

func (e *Executor) searchResume(doc *types.Resume, raw json.RawMessage) Outcome {
	var args SearchResumeArgs
	if out, ok := decode(raw, &args); !ok {
		return out
	}
	return Outcome{Result: Search(doc, args.Query)}
}

// decode unmarshals validated arguments into their typed struct. Schema
// validation runs first, so a failure here is an internal inconsistency, but
// it is still reported as a tool error rather than a panic.
func decode[T any](raw json.RawMessage, args *T) (Outcome, bool) {
	if len(raw) == 0 {
		return Outcome{}, true
	}
	if err := json.Unmarshal(raw, args); err != nil {
		return errorf("failed to decode arguments: %v", err), false
	}
	return Outcome{}, true
}

func editOutcome(path, original, updated string) Outcome {
	return Outcome{
		Result: EditResult{
			Success:  true,
			Location: path,
			Original: original,
			Updated:  updated,
		},
		Changes: []types.ChangeRecord{{
			Section:  path,
			Original: original,
			Updated:  updated,
		}},
	}
}

func errorf(format string, a ...any) Outcome {
	return Outcome{Result: ErrorResult{Error: fmt.Sprintf(format, a...)}}
}
