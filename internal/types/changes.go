package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SuggestionType is the discriminator carried by a change batch
const SuggestionType = "ai_suggestions"

// ChangeRecord describes one atomic, human-reviewable mutation applied by an
// edit tool. Section is a location path into the document, e.g.
// "experience[1].bullets[2]", "header.name", "education[0].degree" or
// "skills". Original is the value captured before the write; it is the empty
// string for an appended bullet. Records are immutable once emitted.
type ChangeRecord struct {
	Section  string `json:"section"`
	Original string `json:"original"`
	Updated  string `json:"updated"`
}

// SuggestedChanges wraps the ordered change batch produced by one
// orchestration run. The batch is the unit the caller accepts or discards;
// Description is a display hint only (first line of the final prose,
// truncated).
type SuggestedChanges struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Changes     []ChangeRecord `json:"changes"`
}

// FieldPath builds the location path for a scalar field edit
func FieldPath(section Section, field string, index int) string {
	switch section {
	case SectionSkills:
		return string(SectionSkills)
	case SectionHeader:
		return fmt.Sprintf("header.%s", field)
	default:
		return fmt.Sprintf("%s[%d].%s", section, index, field)
	}
}

// BulletPath builds the location path for a bullet edit or append
func BulletPath(section Section, entryIndex, bulletIndex int) string {
	return fmt.Sprintf("%s[%d].bullets[%d]", section, entryIndex, bulletIndex)
}

// location is the parsed form of a ChangeRecord.Section path
type location struct {
	section     Section
	entryIndex  int
	field       string
	bulletIndex int
}

// parseLocation parses the path grammar produced by FieldPath and BulletPath
func parseLocation(path string) (location, error) {
	loc := location{entryIndex: -1, bulletIndex: -1}

	head, rest, hasRest := strings.Cut(path, ".")

	name, idx, err := splitIndex(head)
	if err != nil {
		return loc, fmt.Errorf("invalid location %q: %w", path, err)
	}
	section, err := ParseSection(name)
	if err != nil {
		return loc, fmt.Errorf("invalid location %q: %w", path, err)
	}
	loc.section = section
	loc.entryIndex = idx

	if !hasRest {
		if section != SectionSkills {
			return loc, fmt.Errorf("invalid location %q: missing field", path)
		}
		return loc, nil
	}

	field, bulletIdx, err := splitIndex(rest)
	if err != nil {
		return loc, fmt.Errorf("invalid location %q: %w", path, err)
	}
	if field == "bullets" {
		if bulletIdx < 0 {
			return loc, fmt.Errorf("invalid location %q: bullets requires an index", path)
		}
		loc.bulletIndex = bulletIdx
		return loc, nil
	}
	if bulletIdx >= 0 {
		return loc, fmt.Errorf("invalid location %q: unexpected index on field %q", path, field)
	}
	loc.field = field
	return loc, nil
}

// splitIndex splits "name[3]" into ("name", 3) and "name" into ("name", -1)
func splitIndex(s string) (string, int, error) {
	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, -1, nil
	}
	if !strings.HasSuffix(s, "]") {
		return "", -1, fmt.Errorf("malformed index in %q", s)
	}
	idx, err := strconv.Atoi(s[open+1 : len(s)-1])
	if err != nil || idx < 0 {
		return "", -1, fmt.Errorf("malformed index in %q", s)
	}
	return s[:open], idx, nil
}

// ApplyChange replays one change record against a document. Replaying a
// batch in emission order against a copy of the pre-run document reproduces
// the post-run document exactly. A bullet index equal to the current bullet
// count is an append (this is how add_bullet records replay).
func ApplyChange(r *Resume, rec ChangeRecord) error {
	loc, err := parseLocation(rec.Section)
	if err != nil {
		return err
	}

	if loc.bulletIndex >= 0 {
		bullets, err := BulletsRef(r, loc.section, loc.entryIndex)
		if err != nil {
			return err
		}
		switch {
		case loc.bulletIndex < len(*bullets):
			(*bullets)[loc.bulletIndex] = rec.Updated
		case loc.bulletIndex == len(*bullets):
			*bullets = append(*bullets, rec.Updated)
		default:
			return fmt.Errorf("bullet_index %d out of range at %q (%d bullets)", loc.bulletIndex, rec.Section, len(*bullets))
		}
		return nil
	}

	ref, err := FieldRef(r, loc.section, loc.field, loc.entryIndex)
	if err != nil {
		return err
	}
	*ref = rec.Updated
	return nil
}
