package brackets

import (
	"strings"
	"testing"

	"github.com/Dosada05/bracket-editor/models"
	"github.com/stretchr/testify/require"
)

// seededTeams returns teams named after names with ids in lower case and
// seeds in list order.
func seededTeams(names ...string) []models.Team {
	teams := make([]models.Team, len(names))
	for i, n := range names {
		teams[i] = models.Team{ID: strings.ToLower(n), Name: n, Seed: models.IntPtr(i + 1)}
	}
	return teams
}

func mustMatch(t *testing.T, b *models.DoubleEliminationBracket, id string) *models.Match {
	t.Helper()
	m := b.FindMatch(id)
	require.NotNil(t, m, "match %s", id)
	return m
}

func slotTeamID(m *models.Match, slot int) string {
	if m.Teams[slot].Team == nil {
		return ""
	}
	return m.Teams[slot].Team.ID
}

// complete returns m finished with the given score.
func complete(t *testing.T, m *models.Match, scoreA, scoreB int) models.Match {
	t.Helper()
	out, ok := QuickScore(*m, scoreA, scoreB)
	require.True(t, ok, "match %s is not ready", m.ID)
	return out
}
