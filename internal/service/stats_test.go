package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyprice/nhldata/internal/repository/memory"
	"github.com/tonyprice/nhldata/record"
)

type fakeWebAPI struct {
	scores    record.Record
	standings record.Sequence
	roster    record.Sequence
	schedule  record.Record
	err       error

	rosterTeam   string
	rosterSeason string
}

func (f *fakeWebAPI) Scores(date string) (record.Record, error) {
	return f.scores, f.err
}

func (f *fakeWebAPI) Standings(date string) (record.Sequence, error) {
	return f.standings, f.err
}

func (f *fakeWebAPI) Roster(team, season string) (record.Sequence, error) {
	f.rosterTeam = team
	f.rosterSeason = season
	return f.roster, f.err
}

func (f *fakeWebAPI) ClubSchedule(team, window string) (record.Record, error) {
	return f.schedule, f.err
}

type fakeStatsAPI struct {
	teams      record.Sequence
	leaders    record.Sequence
	teamsCalls int
	err        error
}

func (f *fakeStatsAPI) Teams() (record.Sequence, error) {
	f.teamsCalls++
	return f.teams, f.err
}

func (f *fakeStatsAPI) Leaders(pos, attr string) (record.Sequence, error) {
	return f.leaders, f.err
}

func newService(web *fakeWebAPI, stats *fakeStatsAPI) *StatsService {
	return NewStatsService(web, stats, memory.NewRepository())
}

func TestGetScoresFormatsGames(t *testing.T) {
	web := &fakeWebAPI{scores: record.Record{
		"currentDate": "2024-02-10",
		"games": []any{
			map[string]any{
				"awayTeam":  map[string]any{"abbrev": "BOS", "score": float64(3)},
				"homeTeam":  map[string]any{"abbrev": "TOR", "score": float64(2)},
				"gameState": "OFF",
			},
			map[string]any{
				"awayTeam":  map[string]any{"abbrev": "NYR", "score": float64(1)},
				"homeTeam":  map[string]any{"abbrev": "MTL", "score": float64(1)},
				"gameState": "LIVE",
			},
		},
	}}
	svc := newService(web, &fakeStatsAPI{})

	got, err := svc.GetScores("")

	require.NoError(t, err)
	assert.Contains(t, got, "2024-02-10")
	assert.Contains(t, got, "BOS 3 @ TOR 2 (Final)")
	assert.Contains(t, got, "NYR 1 @ MTL 1 (Live)")
}

func TestGetScoresNoGames(t *testing.T) {
	web := &fakeWebAPI{scores: record.Record{"games": []any{}}}
	svc := newService(web, &fakeStatsAPI{})

	got, err := svc.GetScores("")

	require.NoError(t, err)
	assert.Equal(t, "No games scheduled.", got)
}

func TestGetScoresPropagatesError(t *testing.T) {
	web := &fakeWebAPI{err: errors.New("upstream down")}
	svc := newService(web, &fakeStatsAPI{})

	_, err := svc.GetScores("")

	require.ErrorContains(t, err, "upstream down")
}

func TestGetStandingsKeepsUpstreamOrder(t *testing.T) {
	web := &fakeWebAPI{standings: record.Sequence{
		{"teamAbbrev": "BOS", "gamesPlayed": float64(60), "wins": float64(40), "losses": float64(15), "otLosses": float64(5), "points": float64(85)},
		{"teamAbbrev": "TOR", "gamesPlayed": float64(60), "wins": float64(38), "losses": float64(17), "otLosses": float64(5), "points": float64(81)},
	}}
	svc := newService(web, &fakeStatsAPI{})

	got, err := svc.GetStandings()

	require.NoError(t, err)
	assert.Contains(t, got, "1. *BOS* 60 GP, 40-15-5, 85 pts")
	assert.Contains(t, got, "2. *TOR*")
}

func TestGetRosterAcceptsTricodeDirectly(t *testing.T) {
	web := &fakeWebAPI{roster: record.Sequence{
		{"sweaterNumber": float64(34), "firstName": "Auston", "lastName": "Matthews", "positionCode": "C"},
	}}
	stats := &fakeStatsAPI{}
	svc := newService(web, stats)

	got, err := svc.GetRoster("tor", "2023")

	require.NoError(t, err)
	assert.Contains(t, got, "#34 Auston Matthews (C)")
	assert.Equal(t, "TOR", web.rosterTeam)
	assert.Equal(t, "2023", web.rosterSeason)
	// An exact tricode never touches the team directory.
	assert.Zero(t, stats.teamsCalls)
}

func TestGetRosterResolvesFuzzyName(t *testing.T) {
	web := &fakeWebAPI{roster: record.Sequence{}}
	stats := &fakeStatsAPI{teams: record.Sequence{
		{"triCode": "BOS", "fullName": "Boston Bruins"},
		{"triCode": "TOR", "fullName": "Toronto Maple Leafs"},
		{"triCode": "OLD", "fullName": "Defunct Franchise Name"},
	}}
	svc := newService(web, stats)

	_, err := svc.GetRoster("boston bruin", "")

	require.NoError(t, err)
	assert.Equal(t, "BOS", web.rosterTeam)
}

func TestGetRosterUnknownTeam(t *testing.T) {
	stats := &fakeStatsAPI{teams: record.Sequence{
		{"triCode": "BOS", "fullName": "Boston Bruins"},
	}}
	svc := newService(&fakeWebAPI{}, stats)

	_, err := svc.GetRoster("zzzzzz", "")

	require.ErrorContains(t, err, "no team matching")
}

func TestTeamDirectoryIsCached(t *testing.T) {
	web := &fakeWebAPI{roster: record.Sequence{}}
	stats := &fakeStatsAPI{teams: record.Sequence{
		{"triCode": "BOS", "fullName": "Boston Bruins"},
	}}
	svc := newService(web, stats)

	_, err := svc.GetRoster("boston bruinz", "")
	require.NoError(t, err)
	_, err = svc.GetRoster("boston bruinz", "")
	require.NoError(t, err)

	assert.Equal(t, 1, stats.teamsCalls)
}

func TestGetLeadersCapsAtTen(t *testing.T) {
	var leaders record.Sequence
	for i := 0; i < 15; i++ {
		leaders = append(leaders, record.Record{
			"fullName": "Player",
			"value":    float64(100 - i),
		})
	}
	svc := newService(&fakeWebAPI{}, &fakeStatsAPI{leaders: leaders})

	got, err := svc.GetLeaders("skaters", "points")

	require.NoError(t, err)
	assert.Contains(t, got, "10. Player")
	assert.NotContains(t, got, "11. Player")
}

func TestGetLeadersFallsBackToNameParts(t *testing.T) {
	svc := newService(&fakeWebAPI{}, &fakeStatsAPI{leaders: record.Sequence{
		{"firstName": "Connor", "lastName": "McDavid", "value": float64(150)},
	}})

	got, err := svc.GetLeaders("skaters", "points")

	require.NoError(t, err)
	assert.Contains(t, got, "Connor McDavid")
}

func TestGetScheduleFiltersFutureGames(t *testing.T) {
	web := &fakeWebAPI{schedule: record.Record{
		"games": []any{
			map[string]any{"gameState": "OFF", "gameDate": "2024-02-01"},
			map[string]any{
				"gameState": "FUT",
				"gameDate":  "2024-02-12",
				"awayTeam":  map[string]any{"abbrev": "BOS"},
				"homeTeam":  map[string]any{"abbrev": "TOR"},
			},
		},
	}}
	svc := newService(web, &fakeStatsAPI{})

	got, err := svc.GetSchedule("TOR")

	require.NoError(t, err)
	assert.Contains(t, got, "2024-02-12: BOS @ TOR")
	assert.NotContains(t, got, "2024-02-01")
}

func TestGetScheduleNoUpcomingGames(t *testing.T) {
	web := &fakeWebAPI{schedule: record.Record{"games": []any{}}}
	svc := newService(web, &fakeStatsAPI{})

	got, err := svc.GetSchedule("BOS")

	require.NoError(t, err)
	assert.Equal(t, "No upcoming games for BOS.", got)
}
