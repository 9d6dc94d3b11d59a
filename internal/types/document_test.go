package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *Resume {
	return &Resume{
		Name:    "Jordan Lee",
		Title:   "Software Engineer",
		Contact: "jordan@example.com | 555-0100",
		Education: []EducationEntry{
			{School: "State University", Degree: "B.S. Computer Science", Location: "Springfield", Dates: "2018-2022"},
		},
		Experience: []ExperienceEntry{
			{
				Company: "Acme Corp",
				Role:    "Backend Engineer",
				Dates:   "2022-Present",
				Bullets: []string{
					"Developed a REST API using FastAPI and PostgreSQL to ingest LMS data",
					"Reduced p99 latency by 40% through query optimization",
				},
			},
		},
		Projects: []ProjectEntry{
			{Name: "Side Project", Technologies: "Go, SQLite", Bullets: []string{"Built a CLI task tracker"}},
		},
		Leadership: []LeadershipEntry{
			{Organization: "CS Club", Role: "President", Bullets: []string{"Organized weekly coding workshops"}},
		},
		Skills: "Go, Python, SQL",
	}
}

func TestResume_JSONRoundTrip(t *testing.T) {
	doc := sampleResume()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Resume
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *doc, decoded)
}

func TestResume_Header(t *testing.T) {
	doc := sampleResume()
	header := doc.Header()

	assert.Equal(t, "Jordan Lee", header.Name)
	assert.Equal(t, "Software Engineer", header.Title)
	assert.Equal(t, "jordan@example.com | 555-0100", header.Contact)
}

func TestResume_Clone_Independent(t *testing.T) {
	doc := sampleResume()
	clone := doc.Clone()

	require.Equal(t, doc, clone)

	// Mutating the clone must not leak into the original.
	clone.Name = "Someone Else"
	clone.Experience[0].Bullets[0] = "changed"
	clone.Education[0].School = "Other University"
	clone.Projects[0].Bullets = append(clone.Projects[0].Bullets, "new bullet")
	clone.Leadership[0].Bullets[0] = "changed"

	assert.Equal(t, "Jordan Lee", doc.Name)
	assert.Equal(t, "Developed a REST API using FastAPI and PostgreSQL to ingest LMS data", doc.Experience[0].Bullets[0])
	assert.Equal(t, "State University", doc.Education[0].School)
	assert.Len(t, doc.Projects[0].Bullets, 1)
	assert.Equal(t, "Organized weekly coding workshops", doc.Leadership[0].Bullets[0])
}

func TestResume_Clone_Nil(t *testing.T) {
	var doc *Resume
	assert.Nil(t, doc.Clone())
}

func TestResume_Clone_EmptySections(t *testing.T) {
	doc := &Resume{Name: "Minimal"}
	clone := doc.Clone()

	assert.Equal(t, "Minimal", clone.Name)
	assert.Empty(t, clone.Experience)
	assert.Empty(t, clone.Education)
}
