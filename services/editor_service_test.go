package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/bracket-editor/brackets"
	"github.com/Dosada05/bracket-editor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession_Defaults(t *testing.T) {
	svc, _ := newTestEditor(t)

	state, err := svc.CreateSession(context.Background(), CreateSessionInput{})
	require.NoError(t, err)

	assert.NotEmpty(t, state.ID)
	assert.Len(t, state.Teams, DefaultTeamCount)
	assert.Equal(t, models.BracketSize4, state.BracketSize)
	assert.Equal(t, DefaultBestOf, state.BestOf)
	assert.Equal(t, models.ConnectorStyleDefault, state.ConnectorStyle)
	assert.Equal(t, [][2]int{{2, 0}, {0, 2}, {2, 1}, {1, 2}}, state.QuickScores)
	assert.False(t, state.CanUndo)
	assert.False(t, state.CanRedo)
	assert.Empty(t, state.ValidationErrors)
	assert.NotNil(t, state.Conflicts)
	assert.Equal(t, testNow, state.CreatedAt)
	for i, tm := range state.Teams {
		require.NotNil(t, tm.Seed)
		assert.Equal(t, i+1, *tm.Seed)
	}
	assert.True(t, svc.Exists(state.ID))
}

func TestCreateSession_ThreeTeamsGetBye(t *testing.T) {
	svc, _ := newTestEditor(t)

	state, err := svc.CreateSession(context.Background(), CreateSessionInput{Teams: namedTeams("A", "B", "C")})
	require.NoError(t, err)

	assert.Equal(t, models.BracketSize4, state.BracketSize)
	assert.Len(t, state.Teams, 3, "BYEs are not part of the roster")
	completed := 0
	for _, m := range state.Bracket.Upper[0].Matches {
		if m.IsCompleted() {
			completed++
			assert.Equal(t, "c", m.Winner().ID)
		}
	}
	assert.Equal(t, 1, completed)
	assert.Empty(t, state.ValidationErrors)
	assert.Empty(t, state.Stats)
}

func TestCreateSession_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateSessionInput
		want  error
	}{
		{"unsupported size", CreateSessionInput{Size: models.IntPtr(6)}, ErrUnsupportedBracketSize},
		{"bad best-of", CreateSessionInput{BestOf: models.IntPtr(0)}, ErrInvalidBestOf},
		{"unnamed team", CreateSessionInput{Teams: []models.Team{{ID: "a"}, {ID: "b", Name: "B"}}}, ErrTeamNameRequired},
		{"duplicate team", CreateSessionInput{Teams: []models.Team{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}}}, ErrValidationFailed},
		{"one team", CreateSessionInput{TeamCount: models.IntPtr(1)}, ErrTooFewTeams},
		{"too many teams", CreateSessionInput{TeamCount: models.IntPtr(65)}, ErrTooManyTeams},
		{"teams exceed size", CreateSessionInput{Teams: namedTeams("A", "B", "C", "D", "E"), Size: models.IntPtr(4)}, ErrUnsupportedBracketSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestEditor(t)
			_, err := svc.CreateSession(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateSession_FillsFromPoolToSize(t *testing.T) {
	svc, _ := newTestEditor(t)

	state, err := svc.CreateSession(context.Background(), CreateSessionInput{Size: models.IntPtr(16)})
	require.NoError(t, err)

	assert.Len(t, state.Teams, 16)
	assert.Equal(t, models.BracketSize16, state.BracketSize)
}

func TestUpdateMatch_CompletesAndPropagates(t *testing.T) {
	svc, notifier := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	completed := models.MatchStatusCompleted
	state, err := svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{
		Status: &completed,
		Scores: &[2]int{2, 0},
	})
	require.NoError(t, err)

	assert.Equal(t, "a", slotID(findMatch(t, state, "ub2-1"), 0))
	assert.Equal(t, "d", slotID(findMatch(t, state, "lb1-1"), 0))
	assert.True(t, state.CanUndo)
	require.Len(t, state.Stats, 2)
	assert.Equal(t, "a", state.Stats[0].TeamID)

	assert.Equal(t, []string{brackets.MessageBracketUpdated}, notifier.types())
	assert.Equal(t, created.ID, notifier.rooms[0])
}

func TestUpdateMatch_RevertToLive(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	_, err := svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 2, 0)
	require.NoError(t, err)

	live := models.MatchStatusLive
	state, err := svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Status: &live})
	require.NoError(t, err)

	assert.Nil(t, findMatch(t, state, "ub2-1").Teams[0].Team)
	assert.Nil(t, findMatch(t, state, "lb1-1").Teams[0].Team)
	assert.Equal(t, models.MatchStatusLive, findMatch(t, state, "ub1-1").Status)
}

func TestUpdateMatch_ScoreEditPicksWinner(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	_, err := svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 2, 0)
	require.NoError(t, err)

	state, err := svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Scores: &[2]int{0, 2}})
	require.NoError(t, err)

	m := findMatch(t, state, "ub1-1")
	assert.Equal(t, models.MatchStatusCompleted, m.Status)
	assert.Equal(t, "d", m.Winner().ID)
	assert.Equal(t, "d", slotID(findMatch(t, state, "ub2-1"), 0))
	assert.Equal(t, "a", slotID(findMatch(t, state, "lb1-1"), 0))
	assert.Empty(t, state.ValidationErrors)

	// An explicit winner slot overrides the score comparison.
	state, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Scores: &[2]int{1, 2}, WinnerSlot: models.IntPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, "a", findMatch(t, state, "ub1-1").Winner().ID)
	assert.Equal(t, "a", slotID(findMatch(t, state, "ub2-1"), 0))

	// A level score leaves the match without a winner.
	state, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Scores: &[2]int{1, 1}})
	require.NoError(t, err)
	m = findMatch(t, state, "ub1-1")
	assert.Equal(t, models.MatchStatusLive, m.Status)
	assert.Nil(t, m.Winner())
	assert.Nil(t, findMatch(t, state, "ub2-1").Teams[0].Team)
	assert.Nil(t, findMatch(t, state, "lb1-1").Teams[0].Team)
}

func TestUpdateMatch_Errors(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)
	completed := models.MatchStatusCompleted
	bogus := models.MatchStatus("paused")

	_, err := svc.UpdateMatch(ctx, created.ID, "ub2-1", MatchUpdateInput{Status: &completed, Scores: &[2]int{2, 0}})
	assert.ErrorIs(t, err, ErrMatchNotReady)

	_, err = svc.UpdateMatch(ctx, created.ID, "nope", MatchUpdateInput{Status: &completed})
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = svc.UpdateMatch(ctx, "missing", "ub1-1", MatchUpdateInput{})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Scores: &[2]int{-1, 0}})
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidMatchStatus)

	_, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{WinnerSlot: models.IntPtr(2)})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	state, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, state.CanUndo, "failed updates are not recorded")
}

func TestUpdateMatch_Metadata(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)
	at := time.Date(2025, 3, 2, 18, 0, 0, 0, time.UTC)

	state, err := svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{
		BestOf:      models.IntPtr(5),
		ScheduledAt: &at,
		Notes:       strPtr("  opening match "),
		Venue:       strPtr(""),
	})
	require.NoError(t, err)

	m := findMatch(t, state, "ub1-1")
	require.NotNil(t, m.BestOf)
	assert.Equal(t, 5, *m.BestOf)
	require.NotNil(t, m.ScheduledAt)
	assert.True(t, at.Equal(*m.ScheduledAt))
	require.NotNil(t, m.Notes)
	assert.Equal(t, "opening match", *m.Notes)
	assert.Nil(t, m.Venue)

	state, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{ClearSchedule: true})
	require.NoError(t, err)
	assert.Nil(t, findMatch(t, state, "ub1-1").ScheduledAt)
}

func strPtr(s string) *string { return &s }

func TestForfeitMatch(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	state, err := svc.ForfeitMatch(ctx, created.ID, "ub1-1", 0)
	require.NoError(t, err)

	m := findMatch(t, state, "ub1-1")
	assert.Equal(t, "d", m.Winner().ID)
	require.NotNil(t, m.ForfeitTeamID)
	assert.Equal(t, "a", *m.ForfeitTeamID)
	assert.Equal(t, "d", slotID(findMatch(t, state, "ub2-1"), 0))

	_, err = svc.ForfeitMatch(ctx, created.ID, "ub1-1", 3)
	assert.ErrorIs(t, err, ErrInvalidSlot)
	_, err = svc.ForfeitMatch(ctx, created.ID, "gf", 0)
	assert.ErrorIs(t, err, ErrMatchNotReady)
}

func TestForfeitMatch_SessionBestOf(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	_, err := svc.UpdateSettings(ctx, created.ID, SettingsInput{BestOf: models.IntPtr(5)})
	require.NoError(t, err)

	state, err := svc.ForfeitMatch(ctx, created.ID, "ub1-1", 0)
	require.NoError(t, err)
	m := findMatch(t, state, "ub1-1")
	assert.Equal(t, 0, m.Teams[0].Score)
	assert.Equal(t, 3, m.Teams[1].Score)

	// A match-level best-of takes precedence over the session setting.
	_, err = svc.UpdateMatch(ctx, created.ID, "ub1-2", MatchUpdateInput{BestOf: models.IntPtr(7)})
	require.NoError(t, err)
	state, err = svc.ForfeitMatch(ctx, created.ID, "ub1-2", 1)
	require.NoError(t, err)
	assert.Equal(t, 4, findMatch(t, state, "ub1-2").Teams[0].Score)
}

func TestSwapMatchTeams(t *testing.T) {
	svc, _ := newTestEditor(t)
	created := newSeededSession(t, svc)

	state, err := svc.SwapMatchTeams(context.Background(), created.ID, "ub1-2")
	require.NoError(t, err)

	m := findMatch(t, state, "ub1-2")
	assert.Equal(t, "c", slotID(m, 0))
	assert.Equal(t, "b", slotID(m, 1))
}

func TestSwapMatchTeams_FedMatchRejected(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	_, err := svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 2, 0)
	require.NoError(t, err)
	before, err := svc.QuickScoreMatch(ctx, created.ID, "ub1-2", 2, 0)
	require.NoError(t, err)

	for _, id := range []string{"ub2-1", "lb1-1", "lb2-1", "gf"} {
		_, err = svc.SwapMatchTeams(ctx, created.ID, id)
		assert.ErrorIs(t, err, ErrSwapNotAllowed, id)
	}
	state, err := svc.GetSession(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Bracket, state.Bracket)

	// Reopening a feeder clears only the slot it filled.
	live := models.MatchStatusLive
	state, err = svc.UpdateMatch(ctx, created.ID, "ub1-1", MatchUpdateInput{Status: &live})
	require.NoError(t, err)
	final := findMatch(t, state, "ub2-1")
	assert.Equal(t, "", slotID(final, 0))
	assert.Equal(t, "b", slotID(final, 1))
}

func TestUndoRedo(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	_, err := svc.Undo(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNothingToUndo)

	done, err := svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 2, 1)
	require.NoError(t, err)

	undone, err := svc.Undo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Bracket, undone.Bracket)
	assert.False(t, undone.CanUndo)
	assert.True(t, undone.CanRedo)

	redone, err := svc.Redo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, done.Bracket, redone.Bracket)

	_, err = svc.Redo(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNothingToRedo)

	// A new edit after undo drops the redo tail.
	_, err = svc.Undo(ctx, created.ID)
	require.NoError(t, err)
	state, err := svc.SwapMatchTeams(ctx, created.ID, "ub1-1")
	require.NoError(t, err)
	assert.False(t, state.CanRedo)
}

func TestAddAndRemoveTeam_Resize(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	state, err := svc.AddTeam(ctx, created.ID, AddTeamInput{Name: strPtr("Eagles")})
	require.NoError(t, err)
	assert.Len(t, state.Teams, 5)
	assert.Equal(t, models.BracketSize8, state.BracketSize)
	assert.Equal(t, "Eagles", state.Teams[4].Name)
	assert.Equal(t, 5, *state.Teams[4].Seed)
	assert.Empty(t, state.ValidationErrors)

	state, err = svc.AddTeam(ctx, created.ID, AddTeamInput{})
	require.NoError(t, err)
	assert.Len(t, state.Teams, 6, "pool team added")

	_, err = svc.AddTeam(ctx, created.ID, AddTeamInput{Name: strPtr("   ")})
	assert.ErrorIs(t, err, ErrTeamNameRequired)

	state, err = svc.RemoveTeam(ctx, created.ID, state.Teams[5].ID)
	require.NoError(t, err)
	state, err = svc.RemoveTeam(ctx, created.ID, state.Teams[4].ID)
	require.NoError(t, err)
	assert.Equal(t, models.BracketSize4, state.BracketSize)

	_, err = svc.RemoveTeam(ctx, created.ID, "nope")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestRemoveTeam_KeepsTwo(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	state, err := svc.CreateSession(ctx, CreateSessionInput{Teams: namedTeams("A", "B")})
	require.NoError(t, err)

	_, err = svc.RemoveTeam(ctx, state.ID, "a")
	assert.ErrorIs(t, err, ErrTooFewTeams)
}

func TestUpdateTeam_RenamesInBracket(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)
	_, err := svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 2, 0)
	require.NoError(t, err)

	state, err := svc.UpdateTeam(ctx, created.ID, "a", UpdateTeamInput{Name: strPtr("Alpha"), Seed: models.IntPtr(7)})
	require.NoError(t, err)

	assert.Equal(t, "Alpha", findMatch(t, state, "ub1-1").Teams[0].Team.Name)
	assert.Equal(t, "Alpha", findMatch(t, state, "ub2-1").Teams[0].Team.Name)
	assert.Equal(t, 7, *findMatch(t, state, "ub2-1").Teams[0].Team.Seed)
	assert.Equal(t, models.MatchStatusCompleted, findMatch(t, state, "ub1-1").Status, "results survive a rename")

	_, err = svc.UpdateTeam(ctx, created.ID, "a", UpdateTeamInput{Name: strPtr("")})
	assert.ErrorIs(t, err, ErrTeamNameRequired)
}

func TestSetTeamLogo(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	state, previous, err := svc.SetTeamLogo(ctx, created.ID, "b", strPtr("https://cdn/logo-1.png"))
	require.NoError(t, err)
	assert.Empty(t, previous)
	assert.Equal(t, "https://cdn/logo-1.png", *findMatch(t, state, "ub1-2").Teams[0].Team.Logo)

	_, previous, err = svc.SetTeamLogo(ctx, created.ID, "b", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/logo-1.png", previous)
}

func TestReset(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	_, err := svc.UpdateSettings(ctx, created.ID, SettingsInput{BestOf: models.IntPtr(5)})
	require.NoError(t, err)
	_, err = svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 3, 0)
	require.NoError(t, err)

	state, err := svc.Reset(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, DefaultBestOf, state.BestOf)
	for _, m := range state.Bracket.Matches() {
		assert.NotEqual(t, models.MatchStatusCompleted, m.Status, m.ID)
	}
	assert.True(t, state.CanUndo)
}

func TestShuffleAndSeed(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	shuffled, err := svc.Shuffle(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, created.Teams, shuffled.Teams)

	seeded, err := svc.SeedByRank(ctx, created.ID)
	require.NoError(t, err)
	first := findMatch(t, seeded, "ub1-1")
	assert.Equal(t, "a", slotID(first, 0))
	assert.Equal(t, "d", slotID(first, 1))
}

func TestChangeSize(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	state, err := svc.ChangeSize(ctx, created.ID, 8)
	require.NoError(t, err)
	assert.Len(t, state.Teams, 8)
	assert.Equal(t, models.BracketSize8, state.BracketSize)
	assert.Equal(t, "a", state.Teams[0].ID, "existing teams kept")

	state, err = svc.ChangeSize(ctx, created.ID, 4)
	require.NoError(t, err)
	assert.Len(t, state.Teams, 4)

	_, err = svc.ChangeSize(ctx, created.ID, 12)
	assert.ErrorIs(t, err, ErrUnsupportedBracketSize)
}

func TestAutoSchedule(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	state, err := svc.AutoSchedule(ctx, created.ID, ScheduleInput{})
	require.NoError(t, err)
	first := findMatch(t, state, "ub1-1").ScheduledAt
	require.NotNil(t, first)
	assert.True(t, time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC).Equal(*first))
	assert.Empty(t, state.Conflicts)

	_, err = svc.QuickScoreMatch(ctx, created.ID, "ub1-1", 2, 0)
	require.NoError(t, err)
	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	state, err = svc.AutoSchedule(ctx, created.ID, ScheduleInput{Start: &start, SlotMinutes: models.IntPtr(20)})
	require.NoError(t, err)
	assert.True(t, start.Add(20*time.Minute).Equal(*findMatch(t, state, "ub1-2").ScheduledAt))
	require.Len(t, state.Conflicts, 1, "A plays ub1-1 and ub2-1 40 minutes apart")
	assert.Equal(t, [2]string{"ub1-1", "ub2-1"}, state.Conflicts[0].MatchIDs)

	_, err = svc.AutoSchedule(ctx, created.ID, ScheduleInput{SlotMinutes: models.IntPtr(0)})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestUpdateSettings(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)
	simple := models.ConnectorStyleSimple
	bogus := models.ConnectorStyle("curvy")

	state, err := svc.UpdateSettings(ctx, created.ID, SettingsInput{BestOf: models.IntPtr(5), ConnectorStyle: &simple})
	require.NoError(t, err)
	assert.Equal(t, 5, state.BestOf)
	assert.Equal(t, models.ConnectorStyleSimple, state.ConnectorStyle)
	assert.Len(t, state.QuickScores, 6)

	_, err = svc.UpdateSettings(ctx, created.ID, SettingsInput{ConnectorStyle: &bogus})
	assert.ErrorIs(t, err, ErrInvalidConnectorStyle)
	_, err = svc.UpdateSettings(ctx, created.ID, SettingsInput{BestOf: models.IntPtr(-1)})
	assert.ErrorIs(t, err, ErrInvalidBestOf)
}

func TestGroupStage(t *testing.T) {
	svc, _ := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	state, err := svc.GenerateGroupStage(ctx, created.ID, GroupStageInput{GroupCount: 1})
	require.NoError(t, err)
	require.NotNil(t, state.GroupStage)
	matches := state.GroupStage.Groups[0].Matches
	require.Len(t, matches, 6)

	state, err = svc.UpdateGroupMatch(ctx, created.ID, matches[0].ID, [2]int{2, 0}, models.MatchStatusCompleted)
	require.NoError(t, err)
	top := state.GroupStage.Groups[0].Standings[0]
	assert.Equal(t, brackets.PointsForWin, top.Points)

	_, err = svc.UpdateGroupMatch(ctx, created.ID, "nope", [2]int{1, 0}, models.MatchStatusCompleted)
	assert.ErrorIs(t, err, ErrMatchNotFound)
	_, err = svc.GenerateGroupStage(ctx, created.ID, GroupStageInput{GroupCount: 3})
	assert.ErrorIs(t, err, ErrValidationFailed)

	state, err = svc.Reset(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, state.GroupStage)
}

func TestSingleElimination(t *testing.T) {
	svc, _ := newTestEditor(t)
	created := newSeededSession(t, svc)

	se, err := svc.SingleElimination(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BracketTypeSingleElimination, se.Type)
	assert.Len(t, se.Rounds, 3)
}

func TestDeleteSession(t *testing.T) {
	svc, notifier := newTestEditor(t)
	ctx := context.Background()
	created := newSeededSession(t, svc)

	require.NoError(t, svc.DeleteSession(ctx, created.ID))
	assert.False(t, svc.Exists(created.ID))
	assert.Equal(t, []string{brackets.MessageSessionDeleted}, notifier.types())
	assert.Equal(t, []string{created.ID}, notifier.closed)

	assert.ErrorIs(t, svc.DeleteSession(ctx, created.ID), ErrSessionNotFound)
	_, err := svc.GetSession(ctx, created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
