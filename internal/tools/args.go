// Package tools defines the fixed catalog of operations the model may invoke
// against a resume document, and the executor that validates and applies
// them. Tool names and input schemas are part of the external contract and
// must not change between releases.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ReadResumeArgs is the (empty) input for read_resume
type ReadResumeArgs struct{}

// ReadSectionArgs is the input for read_section
type ReadSectionArgs struct {
	Section string `json:"section" jsonschema:"required,enum=header,enum=education,enum=experience,enum=projects,enum=leadership,enum=skills,description=The section to read"`
}

// EditSectionFieldArgs is the input for edit_section_field. Index addresses
// the entry for list sections and is ignored for header and skills.
type EditSectionFieldArgs struct {
	Section  string `json:"section" jsonschema:"required,enum=header,enum=education,enum=experience,enum=projects,enum=leadership,enum=skills,description=The section containing the field"`
	Field    string `json:"field" jsonschema:"required,description=The field to overwrite. header: name/title/contact; skills: skills; education: school/degree/location/dates; experience: company/role/location/dates; projects: name/technologies/dates; leadership: organization/role/dates"`
	NewValue string `json:"new_value" jsonschema:"required,description=The replacement value"`
	Index    *int   `json:"index,omitempty" jsonschema:"description=Zero-based entry index. Required for education/experience/projects/leadership; ignored for header and skills"`
}

// EditBulletArgs is the input for edit_bullet
type EditBulletArgs struct {
	Section     string `json:"section" jsonschema:"required,enum=experience,enum=projects,enum=leadership,description=The bullet-bearing section"`
	EntryIndex  int    `json:"entry_index" jsonschema:"required,description=Zero-based index of the entry within the section"`
	BulletIndex int    `json:"bullet_index" jsonschema:"required,description=Zero-based index of the bullet within the entry"`
	NewText     string `json:"new_text" jsonschema:"required,description=The replacement bullet text"`
}

// AddBulletArgs is the input for add_bullet
type AddBulletArgs struct {
	Section    string `json:"section" jsonschema:"required,enum=experience,enum=projects,enum=leadership,description=The bullet-bearing section"`
	EntryIndex int    `json:"entry_index" jsonschema:"required,description=Zero-based index of the entry within the section"`
	Text       string `json:"text" jsonschema:"required,description=The bullet text to append"`
}

// SearchResumeArgs is the input for search_resume
type SearchResumeArgs struct {
	Query string `json:"query" jsonschema:"required,description=Case-insensitive substring to search for"`
}

// GetResumeStatsArgs is the (empty) input for get_resume_stats
type GetResumeStatsArgs struct{}

// schemaMap generates the JSON-Schema map for an argument struct by
// reflection. The map is plain {type, properties, required} data so it can be
// handed to any provider unchanged and to gojsonschema for validation.
func schemaMap[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		DoNotReference:             true, // Keep schema self-contained, no $refs
		RequiredFromJSONSchemaTags: true, // Respect `jsonschema:"required"` tags
	}
	var v T
	schema := reflector.Reflect(&v)

	data, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal schema for %T: %v", v, err))
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		panic(fmt.Sprintf("failed to unmarshal schema for %T: %v", v, err))
	}

	// Providers reject the meta fields.
	delete(m, "$schema")
	delete(m, "$id")
	if m["type"] == nil {
		m["type"] = "object"
	}
	if m["properties"] == nil {
		m["properties"] = map[string]any{}
	}
	return m
}
