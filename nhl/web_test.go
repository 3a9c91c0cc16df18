package nhl

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonyprice/nhldata/catalog"
	"github.com/tonyprice/nhldata/transport"
)

// webServer serves canned bodies keyed by full request path, including the
// version prefix and any query string.
func webServer(t *testing.T, routes map[string]string) *WebConnector {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if r.URL.RawQuery != "" {
			path += "?" + r.URL.RawQuery
		}
		body, ok := routes[path]
		if !ok {
			t.Errorf("unexpected request %s", path)
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewWebConnector(NewClient(WithBaseURLs(srv.URL, srv.URL)))
}

func TestSeasons(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/season": `[20212022, 20222023, 20232024]`,
	})

	seasons, err := web.Seasons()

	require.NoError(t, err)
	assert.Equal(t, []int{20212022, 20222023, 20232024}, seasons)
}

func TestTeamSeasonsRejectsUnknownTeam(t *testing.T) {
	web := webServer(t, nil)

	_, err := web.TeamSeasons("XXX")

	var invalid *catalog.InvalidParameterValueError
	require.ErrorAs(t, err, &invalid)
}

func TestRosterFlattensGroupsAndCollapsesNames(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/roster/TOR/20232024": `{
			"forwards": [
				{"id": 8479318, "firstName": {"default": "Auston"}, "lastName": {"default": "Matthews"}}
			],
			"defensemen": [
				{"id": 8475166, "firstName": {"default": "Morgan"}, "lastName": {"default": "Rielly"}}
			],
			"goalies": [
				{"id": 8479361, "firstName": {"default": "Joseph"}, "lastName": {"default": "Woll"}}
			]
		}`,
	})

	seq, err := web.Roster("TOR", "2023")

	require.NoError(t, err)
	require.Len(t, seq, 3)
	// Forwards, then defensemen, then goalies; names collapse to strings.
	assert.Equal(t, "Auston", seq[0].Str("firstName"))
	assert.Equal(t, "Morgan", seq[1].Str("firstName"))
	assert.Equal(t, "Joseph", seq[2].Str("firstName"))
}

func TestRosterDefaultsToCurrent(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/roster/BOS/current": `{"forwards": [{"id": 1}]}`,
	})

	seq, err := web.Roster("BOS", "")

	require.NoError(t, err)
	require.Len(t, seq, 1)
}

func TestPlayerGameLogPicksEndpointBySeason(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/player/8478402/game-log/20232024/3": `{"gameLog": [{"gameId": 1}, {"gameId": 2}]}`,
		"/v1/player/8478402/game-log/now":        `{"gameLog": [{"gameId": 3}]}`,
	})

	seq, err := web.PlayerGameLog(8478402, "2023", "playoffs")
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, 1, seq[0].Int("gameId"))

	seq, err = web.PlayerGameLog(8478402, "", "")
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, 3, seq[0].Int("gameId"))
}

func TestStatLeaders(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/skater-stats-leaders/20232024/2?categories=goals&limit=5": `{"goals": [{"value": 69}]}`,
		"/v1/goalie-stats-leaders/current?limit=-1":                    `{"wins": [{"value": 30}]}`,
	})

	rec, err := web.StatLeaders("skater", "2023", "regular", "goals", 5)
	require.NoError(t, err)
	assert.Equal(t, 69, rec.Seq("goals")[0].Int("value"))

	rec, err = web.StatLeaders("goalie", "", "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 30, rec.Seq("wins")[0].Int("value"))
}

func TestStandingsUnwrapsPayload(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/standings/now": `{"standings": [
			{"teamAbbrev": {"default": "BOS"}, "points": 110},
			{"teamAbbrev": {"default": "TOR"}, "points": 102}
		]}`,
	})

	seq, err := web.Standings("")

	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, "BOS", seq[0].Str("teamAbbrev"))
	assert.Equal(t, 110, seq[0].Int("points"))
}

func TestStandingsRejectsBadDate(t *testing.T) {
	web := webServer(t, nil)

	_, err := web.Standings("yesterday")

	var invalid *catalog.InvalidParameterValueError
	require.ErrorAs(t, err, &invalid)
}

func TestScores(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/score/2024-02-10": `{"games": [{"id": 2023020817}]}`,
	})

	rec, err := web.Scores("2024-02-10")

	require.NoError(t, err)
	require.Len(t, rec.Seq("games"), 1)
}

func TestGameCenter(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/gamecenter/2023020817/landing":      `{"id": 2023020817, "gameState": "OFF"}`,
		"/v1/gamecenter/2023020817/boxscore":     `{"playerByGameStats": {}}`,
		"/v1/gamecenter/2023020817/play-by-play": `{"plays": [{"typeDescKey": "goal"}]}`,
	})

	landing, err := web.GameCenterLanding(2023020817)
	require.NoError(t, err)
	assert.Equal(t, 2023020817, landing.Int("id"))

	boxscore, err := web.GameCenterBoxscore(2023020817)
	require.NoError(t, err)
	assert.Contains(t, boxscore, "playerByGameStats")

	pbp, err := web.GameCenterPlayByPlay(2023020817)
	require.NoError(t, err)
	assert.Equal(t, "goal", pbp.Seq("plays")[0].Str("typeDescKey"))
}

func TestMetadata(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/meta?players=8478402&teams=EDM": `{"players": [{"playerId": 8478402}], "teams": [{"name": "Oilers"}]}`,
	})

	rec, err := web.Metadata("8478402", "EDM")

	require.NoError(t, err)
	require.Len(t, rec.Seq("players"), 1)
	require.Len(t, rec.Seq("teams"), 1)
}

func TestDraftRankings(t *testing.T) {
	web := webServer(t, map[string]string{
		"/v1/draft/rankings/2024/1": `{"rankings": [{"lastName": "Celebrini"}]}`,
		"/v1/draft/rankings/now":    `{"rankings": [{"lastName": "Schaefer"}]}`,
	})

	seq, err := web.DraftRankings(2024, "1")
	require.NoError(t, err)
	assert.Equal(t, "Celebrini", seq[0].Str("lastName"))

	seq, err = web.DraftRankings(0, "")
	require.NoError(t, err)
	assert.Equal(t, "Schaefer", seq[0].Str("lastName"))
}

func TestWebUpstreamErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()
	web := NewWebConnector(NewClient(WithBaseURLs(srv.URL, srv.URL)))

	_, err := web.Standings("")

	var upstream *transport.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
}
