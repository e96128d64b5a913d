package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileUsable(t *testing.T) {
	assert.False(t, ProfileUsable(nil))
	assert.False(t, ProfileUsable(&EntityProfile{Industry: ""}))
	assert.False(t, ProfileUsable(&EntityProfile{Industry: "N/A"}))
	assert.False(t, ProfileUsable(&EntityProfile{Industry: "Error: timeout"}))
	assert.False(t, ProfileUsable(&EntityProfile{Industry: "Extraction Failed (Parsing Error)"}))
	assert.True(t, ProfileUsable(&EntityProfile{Industry: "Banking"}))
	// The marker convention is case sensitive.
	assert.True(t, ProfileUsable(&EntityProfile{Industry: "error handling services"}))
}

func TestResearchOutcome(t *testing.T) {
	p := &EntityProfile{Industry: "Banking"}
	assert.True(t, ResearchOK(p).OK())
	assert.False(t, ResearchFailed(nil, "no search results").OK())

	// A failed outcome can still carry partial data for rendering.
	failed := ResearchFailed(&EntityProfile{Industry: "Error: quota"}, "Error: quota")
	assert.False(t, failed.OK())
	assert.NotNil(t, failed.Profile)
}
