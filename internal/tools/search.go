package tools

import (
	"strings"

	"github.com/jonathan/resume-edit-agent/internal/types"
)

// Match is one search hit: the logical location path of the matched leaf and
// its full text
type Match struct {
	Location string `json:"location"`
	Text     string `json:"text"`
}

// SearchResult is the search_resume payload
type SearchResult struct {
	Query   string  `json:"query"`
	Matches []Match `json:"matches"`
	Count   int     `json:"count"`
}

// leaf is one string-valued field of the document with its location path
type leaf struct {
	location string
	text     string
}

// walkLeaves visits every string leaf of the document in deterministic
// order: header, education, experience (fields then bullets), projects,
// leadership, skills. Both search and the stats word count depend on this
// ordering being stable.
func walkLeaves(doc *types.Resume, visit func(leaf)) {
	visit(leaf{"header.name", doc.Name})
	visit(leaf{"header.title", doc.Title})
	visit(leaf{"header.contact", doc.Contact})

	for i, e := range doc.Education {
		visit(leaf{types.FieldPath(types.SectionEducation, "school", i), e.School})
		visit(leaf{types.FieldPath(types.SectionEducation, "degree", i), e.Degree})
		visit(leaf{types.FieldPath(types.SectionEducation, "location", i), e.Location})
		visit(leaf{types.FieldPath(types.SectionEducation, "dates", i), e.Dates})
	}

	for i, e := range doc.Experience {
		visit(leaf{types.FieldPath(types.SectionExperience, "company", i), e.Company})
		visit(leaf{types.FieldPath(types.SectionExperience, "role", i), e.Role})
		visit(leaf{types.FieldPath(types.SectionExperience, "location", i), e.Location})
		visit(leaf{types.FieldPath(types.SectionExperience, "dates", i), e.Dates})
		for j, bullet := range e.Bullets {
			visit(leaf{types.BulletPath(types.SectionExperience, i, j), bullet})
		}
	}

	for i, p := range doc.Projects {
		visit(leaf{types.FieldPath(types.SectionProjects, "name", i), p.Name})
		visit(leaf{types.FieldPath(types.SectionProjects, "technologies", i), p.Technologies})
		visit(leaf{types.FieldPath(types.SectionProjects, "dates", i), p.Dates})
		for j, bullet := range p.Bullets {
			visit(leaf{types.BulletPath(types.SectionProjects, i, j), bullet})
		}
	}

	for i, l := range doc.Leadership {
		visit(leaf{types.FieldPath(types.SectionLeadership, "organization", i), l.Organization})
		visit(leaf{types.FieldPath(types.SectionLeadership, "role", i), l.Role})
		visit(leaf{types.FieldPath(types.SectionLeadership, "dates", i), l.Dates})
		for j, bullet := range l.Bullets {
			visit(leaf{types.BulletPath(types.SectionLeadership, i, j), bullet})
		}
	}

	visit(leaf{"skills", doc.Skills})
}

// Search performs a case-insensitive substring search over every string leaf
// of the document. Matches come back in document order; there is no ranking.
func Search(doc *types.Resume, query string) SearchResult {
	result := SearchResult{Query: query, Matches: []Match{}}
	if query == "" {
		return result
	}

	needle := strings.ToLower(query)
	walkLeaves(doc, func(l leaf) {
		if l.text == "" {
			return
		}
		if strings.Contains(strings.ToLower(l.text), needle) {
			result.Matches = append(result.Matches, Match{Location: l.location, Text: l.text})
		}
	})

	result.Count = len(result.Matches)
	return result
}
