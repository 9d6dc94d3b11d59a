// Package types provides type definitions for structured data used throughout the resume edit agent.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume represents the full document operated on by the edit tools.
// It is a passive record: all behavior lives in the tools and orchestrator packages.
type Resume struct {
	Name       string            `json:"name"`
	Title      string            `json:"title"`
	Contact    string            `json:"contact"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Leadership []LeadershipEntry `json:"leadership"`
	Skills     string            `json:"skills"`
}

// EducationEntry represents one education item (scalar fields only, no bullets)
type EducationEntry struct {
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates,omitempty"`
}

// ExperienceEntry represents one work experience item with its bullet list
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets"`
}

// ProjectEntry represents one project item with its bullet list
type ProjectEntry struct {
	Name         string   `json:"name"`
	Technologies string   `json:"technologies,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Bullets      []string `json:"bullets"`
}

// LeadershipEntry represents one leadership/activity item with its bullet list
type LeadershipEntry struct {
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Dates        string   `json:"dates,omitempty"`
	Bullets      []string `json:"bullets"`
}

// Header is the view of the three top-level scalar fields returned by read_section("header")
type Header struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Contact string `json:"contact"`
}

// Header returns the header view of the resume
func (r *Resume) Header() Header {
	return Header{Name: r.Name, Title: r.Title, Contact: r.Contact}
}

// Clone returns a deep copy of the resume. Every orchestration run must
// operate on its own copy so that in-place tool mutations never leak
// between runs.
func (r *Resume) Clone() *Resume {
	if r == nil {
		return nil
	}
	out := *r

	out.Education = make([]EducationEntry, len(r.Education))
	copy(out.Education, r.Education)

	out.Experience = make([]ExperienceEntry, len(r.Experience))
	for i, e := range r.Experience {
		e.Bullets = append([]string(nil), e.Bullets...)
		out.Experience[i] = e
	}

	out.Projects = make([]ProjectEntry, len(r.Projects))
	for i, p := range r.Projects {
		p.Bullets = append([]string(nil), p.Bullets...)
		out.Projects[i] = p
	}

	out.Leadership = make([]LeadershipEntry, len(r.Leadership))
	for i, l := range r.Leadership {
		l.Bullets = append([]string(nil), l.Bullets...)
		out.Leadership[i] = l
	}

	return &out
}
