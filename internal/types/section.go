package types

import (
	"fmt"
	"sort"
)

// Section identifies one of the six named document regions. It is a closed
// set: anything outside the constants below is rejected by ParseSection, which
// is how the "unknown section" tool error is produced.
type Section string

// Section constants name the six addressable document regions
const (
	SectionHeader     Section = "header"
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionLeadership Section = "leadership"
	SectionSkills     Section = "skills"
)

// SectionNames returns all section names in document order
func SectionNames() []string {
	return []string{
		string(SectionHeader),
		string(SectionEducation),
		string(SectionExperience),
		string(SectionProjects),
		string(SectionLeadership),
		string(SectionSkills),
	}
}

// BulletSectionNames returns the names of the three bullet-bearing sections
func BulletSectionNames() []string {
	return []string{
		string(SectionExperience),
		string(SectionProjects),
		string(SectionLeadership),
	}
}

// ParseSection validates a section name supplied by the model
func ParseSection(name string) (Section, error) {
	switch Section(name) {
	case SectionHeader, SectionEducation, SectionExperience, SectionProjects, SectionLeadership, SectionSkills:
		return Section(name), nil
	default:
		return "", fmt.Errorf("unknown section %q (expected one of: header, education, experience, projects, leadership, skills)", name)
	}
}

// IsList reports whether the section is an ordered sequence of entries.
// header and skills are the two scalar special cases.
func (s Section) IsList() bool {
	return s != SectionHeader && s != SectionSkills
}

// HasBullets reports whether the section's entries carry bullet lists
func (s Section) HasBullets() bool {
	return s == SectionExperience || s == SectionProjects || s == SectionLeadership
}

// Accessor tables: one map per section from wire-level field name to a
// pointer accessor. The tables are the single source of truth for which
// fields the edit tools may touch.
var (
	headerFields = map[string]func(*Resume) *string{
		"name":    func(r *Resume) *string { return &r.Name },
		"title":   func(r *Resume) *string { return &r.Title },
		"contact": func(r *Resume) *string { return &r.Contact },
	}
	educationFields = map[string]func(*EducationEntry) *string{
		"school":   func(e *EducationEntry) *string { return &e.School },
		"degree":   func(e *EducationEntry) *string { return &e.Degree },
		"location": func(e *EducationEntry) *string { return &e.Location },
		"dates":    func(e *EducationEntry) *string { return &e.Dates },
	}
	experienceFields = map[string]func(*ExperienceEntry) *string{
		"company":  func(e *ExperienceEntry) *string { return &e.Company },
		"role":     func(e *ExperienceEntry) *string { return &e.Role },
		"location": func(e *ExperienceEntry) *string { return &e.Location },
		"dates":    func(e *ExperienceEntry) *string { return &e.Dates },
	}
	projectFields = map[string]func(*ProjectEntry) *string{
		"name":         func(p *ProjectEntry) *string { return &p.Name },
		"technologies": func(p *ProjectEntry) *string { return &p.Technologies },
		"dates":        func(p *ProjectEntry) *string { return &p.Dates },
	}
	leadershipFields = map[string]func(*LeadershipEntry) *string{
		"organization": func(l *LeadershipEntry) *string { return &l.Organization },
		"role":         func(l *LeadershipEntry) *string { return &l.Role },
		"dates":        func(l *LeadershipEntry) *string { return &l.Dates },
	}
)

// FieldNames returns the editable field names for a section, sorted for
// stable error messages
func FieldNames(section Section) []string {
	var names []string
	switch section {
	case SectionHeader:
		for k := range headerFields {
			names = append(names, k)
		}
	case SectionSkills:
		names = []string{"skills"}
	case SectionEducation:
		for k := range educationFields {
			names = append(names, k)
		}
	case SectionExperience:
		for k := range experienceFields {
			names = append(names, k)
		}
	case SectionProjects:
		for k := range projectFields {
			names = append(names, k)
		}
	case SectionLeadership:
		for k := range leadershipFields {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// EntryCount returns the number of entries in a list section (0 for the
// scalar sections)
func EntryCount(r *Resume, section Section) int {
	switch section {
	case SectionEducation:
		return len(r.Education)
	case SectionExperience:
		return len(r.Experience)
	case SectionProjects:
		return len(r.Projects)
	case SectionLeadership:
		return len(r.Leadership)
	default:
		return 0
	}
}

// FieldRef resolves a section/field/index triple to a pointer into the
// document. index is ignored for header and skills. Unknown fields and
// out-of-range indexes are errors; the document is never touched on error.
func FieldRef(r *Resume, section Section, field string, index int) (*string, error) {
	if section.IsList() {
		if index < 0 || index >= EntryCount(r, section) {
			return nil, fmt.Errorf("index %d out of range for section %q (%d entries)", index, section, EntryCount(r, section))
		}
	}

	switch section {
	case SectionHeader:
		if get, ok := headerFields[field]; ok {
			return get(r), nil
		}
	case SectionSkills:
		if field == "skills" || field == "" {
			return &r.Skills, nil
		}
	case SectionEducation:
		if get, ok := educationFields[field]; ok {
			return get(&r.Education[index]), nil
		}
	case SectionExperience:
		if get, ok := experienceFields[field]; ok {
			return get(&r.Experience[index]), nil
		}
	case SectionProjects:
		if get, ok := projectFields[field]; ok {
			return get(&r.Projects[index]), nil
		}
	case SectionLeadership:
		if get, ok := leadershipFields[field]; ok {
			return get(&r.Leadership[index]), nil
		}
	}

	return nil, fmt.Errorf("unknown field %q for section %q (expected one of: %v)", field, section, FieldNames(section))
}

// BulletsRef resolves a section/index pair to the entry's bullet slice.
// Only experience, projects and leadership carry bullets.
func BulletsRef(r *Resume, section Section, index int) (*[]string, error) {
	if !section.HasBullets() {
		return nil, fmt.Errorf("section %q has no bullets (expected one of: %v)", section, BulletSectionNames())
	}
	if index < 0 || index >= EntryCount(r, section) {
		return nil, fmt.Errorf("entry_index %d out of range for section %q (%d entries)", index, section, EntryCount(r, section))
	}

	switch section {
	case SectionExperience:
		return &r.Experience[index].Bullets, nil
	case SectionProjects:
		return &r.Projects[index].Bullets, nil
	default:
		return &r.Leadership[index].Bullets, nil
	}
}
