package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_SingleBulletMatch(t *testing.T) {
	result := Search(testResume(), "FastAPI")

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "experience[0].bullets[0]", result.Matches[0].Location)
	assert.Equal(t, "Developed a REST API using FastAPI and PostgreSQL to ingest LMS data", result.Matches[0].Text)
	assert.Equal(t, 1, result.Count)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	result := Search(testResume(), "fastapi")
	require.Len(t, result.Matches, 1)

	result = Search(testResume(), "ACME")
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "experience[0].company", result.Matches[0].Location)
}

func TestSearch_DocumentOrder(t *testing.T) {
	// "Go" appears in projects technologies and in skills; header/experience
	// leaves come first in the walk but contain no match.
	result := Search(testResume(), "Go")

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "projects[0].technologies", result.Matches[0].Location)
	assert.Equal(t, "skills", result.Matches[1].Location)
}

func TestSearch_HeaderAndSkills(t *testing.T) {
	result := Search(testResume(), "jordan")
	locations := make([]string, 0, len(result.Matches))
	for _, m := range result.Matches {
		locations = append(locations, m.Location)
	}
	assert.Equal(t, []string{"header.name", "header.contact"}, locations)
}

func TestSearch_NoMatches(t *testing.T) {
	result := Search(testResume(), "kubernetes")
	assert.Empty(t, result.Matches)
	assert.Equal(t, 0, result.Count)
}

func TestSearch_EmptyQuery(t *testing.T) {
	result := Search(testResume(), "")
	assert.Empty(t, result.Matches)
}
