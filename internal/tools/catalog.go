package tools

import (
	"github.com/jonathan/resume-edit-agent/internal/llm"
)

// Tool names are the external contract shown to the model; renaming one is a
// breaking change for every prompt and transcript that references it.
const (
	ToolReadResume       = "read_resume"
	ToolReadSection      = "read_section"
	ToolEditSectionField = "edit_section_field"
	ToolEditBullet       = "edit_bullet"
	ToolAddBullet        = "add_bullet"
	ToolSearchResume     = "search_resume"
	ToolGetResumeStats   = "get_resume_stats"
)

// Definition describes one callable tool: its stable name, the description
// placed in the model's context, and the reflected input schema
type Definition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Catalog is the fixed, ordered set of tool definitions. It is built once at
// startup, is immutable afterward, and may be shared across concurrent runs.
type Catalog struct {
	defs  []Definition
	index map[string]int
}

// NewCatalog builds the standard resume-editing catalog
func NewCatalog() *Catalog {
	defs := []Definition{
		{
			Name:        ToolReadResume,
			Description: "Read the entire resume document. Use this first to understand the current content before making edits.",
			InputSchema: schemaMap[ReadResumeArgs](),
		},
		{
			Name:        ToolReadSection,
			Description: "Read a single section of the resume: header (name/title/contact), education, experience, projects, leadership, or skills.",
			InputSchema: schemaMap[ReadSectionArgs](),
		},
		{
			Name:        ToolEditSectionField,
			Description: "Overwrite one scalar field of the resume. Provide index to address an entry in a list section; header and skills take no index.",
			InputSchema: schemaMap[EditSectionFieldArgs](),
		},
		{
			Name:        ToolEditBullet,
			Description: "Overwrite one bullet of an experience, project, or leadership entry.",
			InputSchema: schemaMap[EditBulletArgs](),
		},
		{
			Name:        ToolAddBullet,
			Description: "Append a new bullet to an experience, project, or leadership entry.",
			InputSchema: schemaMap[AddBulletArgs](),
		},
		{
			Name:        ToolSearchResume,
			Description: "Case-insensitive substring search across every text field and bullet. Returns each match's location path and text.",
			InputSchema: schemaMap[SearchResumeArgs](),
		},
		{
			Name:        ToolGetResumeStats,
			Description: "Get structural counts (entries per section, bullets, words) and a completeness assessment of the resume.",
			InputSchema: schemaMap[GetResumeStatsArgs](),
		},
	}

	index := make(map[string]int, len(defs))
	for i, def := range defs {
		index[def.Name] = i
	}
	return &Catalog{defs: defs, index: index}
}

// Get returns the definition for a tool name
func (c *Catalog) Get(name string) (Definition, bool) {
	i, ok := c.index[name]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// Names returns the tool names in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, def := range c.defs {
		names[i] = def.Name
	}
	return names
}

// Specs returns the catalog in the provider-neutral form handed to llm.Client
func (c *Catalog) Specs() []llm.ToolSpec {
	specs := make([]llm.ToolSpec, len(c.defs))
	for i, def := range c.defs {
		specs[i] = llm.ToolSpec{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}
	}
	return specs
}
