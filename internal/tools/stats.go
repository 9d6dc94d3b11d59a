package tools

import (
	"math"
	"strings"

	"github.com/jonathan/resume-edit-agent/internal/types"
)

// completenessFieldCount is the number of top-level fields tracked by the
// completeness assessment
const completenessFieldCount = 8

// Completeness reports which of the eight tracked top-level fields are
// populated, plus the rounded percentage
type Completeness struct {
	Name       bool `json:"name"`
	Title      bool `json:"title"`
	Contact    bool `json:"contact"`
	Education  bool `json:"education"`
	Experience bool `json:"experience"`
	Projects   bool `json:"projects"`
	Leadership bool `json:"leadership"`
	Skills     bool `json:"skills"`
	Percent    int  `json:"percent"`
}

// Stats is the get_resume_stats payload
type Stats struct {
	EducationEntries  int          `json:"education_entries"`
	ExperienceEntries int          `json:"experience_entries"`
	ProjectEntries    int          `json:"project_entries"`
	LeadershipEntries int          `json:"leadership_entries"`
	TotalBullets      int          `json:"total_bullets"`
	WordCount         int          `json:"word_count"`
	Completeness      Completeness `json:"completeness"`
}

// CollectStats computes structural counts and the completeness assessment
func CollectStats(doc *types.Resume) Stats {
	stats := Stats{
		EducationEntries:  len(doc.Education),
		ExperienceEntries: len(doc.Experience),
		ProjectEntries:    len(doc.Projects),
		LeadershipEntries: len(doc.Leadership),
	}

	for _, e := range doc.Experience {
		stats.TotalBullets += len(e.Bullets)
	}
	for _, p := range doc.Projects {
		stats.TotalBullets += len(p.Bullets)
	}
	for _, l := range doc.Leadership {
		stats.TotalBullets += len(l.Bullets)
	}

	walkLeaves(doc, func(l leaf) {
		stats.WordCount += len(strings.Fields(l.text))
	})

	c := Completeness{
		Name:       doc.Name != "",
		Title:      doc.Title != "",
		Contact:    doc.Contact != "",
		Education:  len(doc.Education) > 0,
		Experience: len(doc.Experience) > 0,
		Projects:   len(doc.Projects) > 0,
		Leadership: len(doc.Leadership) > 0,
		Skills:     doc.Skills != "",
	}

	populated := 0
	for _, present := range []bool{c.Name, c.Title, c.Contact, c.Education, c.Experience, c.Projects, c.Leadership, c.Skills} {
		if present {
			populated++
		}
	}
	c.Percent = int(math.Round(float64(populated) / completenessFieldCount * 100))

	stats.Completeness = c
	return stats
}
