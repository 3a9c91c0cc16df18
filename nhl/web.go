package nhl

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tonyprice/nhldata/record"
)

// WebConnector exposes the api-web.nhle.com operations. Every call is a
// single synchronous GET; errors are returned to the caller untouched, with
// no retry and no partial results.
type WebConnector struct {
	client *Client
}

func NewWebConnector(client *Client) *WebConnector {
	return &WebConnector{client: client}
}

func (w *WebConnector) fetch(call string, params map[string]string) (record.Sequence, error) {
	spec, err := webCalls.Lookup(call)
	if err != nil {
		return nil, err
	}
	path, err := spec.Build(params)
	if err != nil {
		return nil, err
	}
	body, err := w.client.getWeb(path)
	if err != nil {
		return nil, err
	}
	seq, err := record.FromJSON(body, spec.Shape, spec.DataPath...)
	if err != nil {
		return nil, err
	}
	if spec.CollapseDefaults {
		for i, r := range seq {
			seq[i] = record.CollapseDefaults(r)
		}
	}
	return seq, nil
}

func (w *WebConnector) one(call string, params map[string]string) (record.Record, error) {
	seq, err := w.fetch(call, params)
	if err != nil {
		return nil, err
	}
	return seq[0], nil
}

// Seasons lists every NHL season ID, e.g. 20232024.
func (w *WebConnector) Seasons() ([]int, error) {
	return w.seasonList("seasons", nil)
}

// TeamSeasons lists the season IDs in which the team iced a roster.
func (w *WebConnector) TeamSeasons(team string) ([]int, error) {
	return w.seasonList("team-seasons", map[string]string{"team": team})
}

// seasonList handles the two endpoints that return a bare array of season
// IDs rather than objects.
func (w *WebConnector) seasonList(call string, params map[string]string) ([]int, error) {
	spec, err := webCalls.Lookup(call)
	if err != nil {
		return nil, err
	}
	path, err := spec.Build(params)
	if err != nil {
		return nil, err
	}
	body, err := w.client.getWeb(path)
	if err != nil {
		return nil, err
	}
	var seasons []int
	if err := json.Unmarshal(body, &seasons); err != nil {
		return nil, &record.MalformedError{Err: err}
	}
	return seasons, nil
}

// Roster returns the team's roster for a season, flattened across the
// forwards, defensemen and goalies groups with localized names collapsed.
// An empty season means the current roster.
func (w *WebConnector) Roster(team, season string) (record.Sequence, error) {
	seq, err := w.fetch("roster", map[string]string{"team": team, "season": season})
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	return seq, nil
}

// PlayerInfo returns the landing-page record for a player ID.
func (w *WebConnector) PlayerInfo(playerID int) (record.Record, error) {
	rec, err := w.one("player-info", map[string]string{"player": strconv.Itoa(playerID)})
	if err != nil {
		return nil, fmt.Errorf("fetching player info: %w", err)
	}
	return rec, nil
}

// PlayerGameLog returns a player's game log. An empty season means the
// current one; gametype is "regular" or "playoffs" and defaults to regular.
func (w *WebConnector) PlayerGameLog(playerID int, season, gametype string) (record.Sequence, error) {
	params := map[string]string{"player": strconv.Itoa(playerID)}
	call := "player-game-log-now"
	if season != "" {
		call = "player-game-log"
		params["season"] = season
		params["gametype"] = gametype
	}
	seq, err := w.fetch(call, params)
	if err != nil {
		return nil, fmt.Errorf("fetching game log: %w", err)
	}
	return seq, nil
}

// StatLeaders returns the statistical leaders payload for "skater" or
// "goalie". An empty season means the current one; categories narrows the
// attributes and limit caps each list (-1 for all).
func (w *WebConnector) StatLeaders(kind, season, gametype, categories string, limit int) (record.Record, error) {
	if limit == 0 {
		limit = -1
	}
	params := map[string]string{
		"kind":       kind,
		"categories": categories,
		"limit":      strconv.Itoa(limit),
	}
	call := "stat-leaders-current"
	if season != "" {
		call = "stat-leaders"
		params["season"] = season
		params["gametype"] = gametype
	}
	rec, err := w.one(call, params)
	if err != nil {
		return nil, fmt.Errorf("fetching stat leaders: %w", err)
	}
	return rec, nil
}

// Standings returns the league standings for a date, "now" when empty.
func (w *WebConnector) Standings(date string) (record.Sequence, error) {
	seq, err := w.fetch("standings", map[string]string{"date": date})
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}
	return seq, nil
}

// StandingsInfo returns season boundary metadata for standings.
func (w *WebConnector) StandingsInfo() (record.Record, error) {
	return w.one("standings-info", nil)
}

// ClubStats returns the team's player statistics, current when gametype is
// empty.
func (w *WebConnector) ClubStats(team, gametype string) (record.Record, error) {
	rec, err := w.one("club-stats", map[string]string{"team": team, "gametype": gametype})
	if err != nil {
		return nil, fmt.Errorf("fetching club stats: %w", err)
	}
	return rec, nil
}

// ClubSchedule returns the team's season schedule around window, which is
// "now" or YYYY-MM.
func (w *WebConnector) ClubSchedule(team, window string) (record.Record, error) {
	rec, err := w.one("club-schedule-season", map[string]string{"team": team, "window": window})
	if err != nil {
		return nil, fmt.Errorf("fetching club schedule: %w", err)
	}
	return rec, nil
}

// LeagueSchedule returns the league-wide schedule for a date.
func (w *WebConnector) LeagueSchedule(date string) (record.Record, error) {
	rec, err := w.one("league-schedule", map[string]string{"date": date})
	if err != nil {
		return nil, fmt.Errorf("fetching league schedule: %w", err)
	}
	return rec, nil
}

// Scores returns the scores payload for a date, "now" when empty.
func (w *WebConnector) Scores(date string) (record.Record, error) {
	rec, err := w.one("scores", map[string]string{"date": date})
	if err != nil {
		return nil, fmt.Errorf("fetching scores: %w", err)
	}
	return rec, nil
}

// Scoreboard returns the current league scoreboard.
func (w *WebConnector) Scoreboard() (record.Record, error) {
	return w.one("scoreboard", nil)
}

// GameCenterLanding returns the game landing payload: matchup, summary and
// scoring for one game ID.
func (w *WebConnector) GameCenterLanding(gameID int) (record.Record, error) {
	rec, err := w.one("gamecenter-landing", map[string]string{"game": strconv.Itoa(gameID)})
	if err != nil {
		return nil, fmt.Errorf("fetching game landing: %w", err)
	}
	return rec, nil
}

// GameCenterBoxscore returns the boxscore payload for one game ID.
func (w *WebConnector) GameCenterBoxscore(gameID int) (record.Record, error) {
	rec, err := w.one("gamecenter-boxscore", map[string]string{"game": strconv.Itoa(gameID)})
	if err != nil {
		return nil, fmt.Errorf("fetching boxscore: %w", err)
	}
	return rec, nil
}

// GameCenterPlayByPlay returns the play-by-play payload for one game ID,
// with the event list under its "plays" key.
func (w *WebConnector) GameCenterPlayByPlay(gameID int) (record.Record, error) {
	rec, err := w.one("gamecenter-play-by-play", map[string]string{"game": strconv.Itoa(gameID)})
	if err != nil {
		return nil, fmt.Errorf("fetching play-by-play: %w", err)
	}
	return rec, nil
}

// Metadata resolves comma-separated player IDs and team tricodes into their
// metadata records. Either argument may be empty.
func (w *WebConnector) Metadata(players, teams string) (record.Record, error) {
	rec, err := w.one("meta", map[string]string{"players": players, "teams": teams})
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}
	return rec, nil
}

// Prospects returns the team's prospects flattened across position groups.
func (w *WebConnector) Prospects(team string) (record.Sequence, error) {
	seq, err := w.fetch("prospects", map[string]string{"team": team})
	if err != nil {
		return nil, fmt.Errorf("fetching prospects: %w", err)
	}
	return seq, nil
}

// DraftRankings returns draft rankings. Year 0 means the current rankings;
// category is 1 NA skaters, 2 intl skaters, 3 NA goalies, 4 intl goalies.
func (w *WebConnector) DraftRankings(year int, category string) (record.Sequence, error) {
	if year == 0 {
		return w.fetch("draft-rankings-now", nil)
	}
	return w.fetch("draft-rankings", map[string]string{
		"year":     strconv.Itoa(year),
		"category": category,
	})
}

// TVSchedule returns the broadcast schedule for a date.
func (w *WebConnector) TVSchedule(date string) (record.Record, error) {
	return w.one("tv-schedule", map[string]string{"date": date})
}
