package services

import (
	"strings"
	"testing"

	"github.com/Dosada05/bracket-editor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTeams(t *testing.T) {
	teams := DefaultTeams()
	require.Len(t, teams, 64)

	ids := make(map[string]bool)
	names := make(map[string]bool)
	for i, tm := range teams {
		ids[tm.ID] = true
		names[tm.Name] = true
		require.NotNil(t, tm.Seed)
		assert.Equal(t, i+1, *tm.Seed)
		assert.False(t, tm.IsBye())
	}
	assert.Len(t, ids, 64)
	assert.Len(t, names, 64)
}

func TestNewStaticTeamPool_FallsBackToDefaults(t *testing.T) {
	assert.Len(t, NewStaticTeamPool(nil).Teams(), 64)

	custom := NewStaticTeamPool([]models.Team{{ID: "x", Name: "X"}})
	teams := custom.Teams()
	require.Len(t, teams, 1)
	teams[0].Name = "changed"
	assert.Equal(t, "X", custom.Teams()[0].Name)
}

func TestPickTeams_SkipsExistingAndSeedsInOrder(t *testing.T) {
	pool := NewStaticTeamPool([]models.Team{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}})
	existing := []models.Team{{ID: "a", Name: "A", Seed: models.IntPtr(1)}}

	picked := pickTeams(pool, existing, 2)

	require.Len(t, picked, 2)
	assert.ElementsMatch(t, []string{"b", "c"}, []string{picked[0].ID, picked[1].ID})
	assert.Equal(t, 2, *picked[0].Seed)
	assert.Equal(t, 3, *picked[1].Seed)
}

func TestPickTeams_GeneratesWhenPoolRunsDry(t *testing.T) {
	pool := NewStaticTeamPool([]models.Team{{ID: "a", Name: "A"}})

	picked := pickTeams(pool, nil, 3)

	require.Len(t, picked, 3)
	assert.Equal(t, "a", picked[0].ID)
	assert.True(t, strings.HasPrefix(picked[1].ID, "t-"))
	assert.Equal(t, "Team 3", picked[2].Name)
	assert.NotEqual(t, picked[1].ID, picked[2].ID)
}
