package nhl

import (
	"fmt"
	"strconv"

	"github.com/tonyprice/nhldata/catalog"
	"github.com/tonyprice/nhldata/record"
)

// summaryPageSize is the page size the stats API serves for player
// summaries.
const summaryPageSize = 100

// StatsConnector exposes the api.nhle.com/stats/rest operations.
type StatsConnector struct {
	client *Client
}

func NewStatsConnector(client *Client) *StatsConnector {
	return &StatsConnector{client: client}
}

func (s *StatsConnector) fetch(call string, params map[string]string) (record.Sequence, error) {
	spec, err := statsCalls.Lookup(call)
	if err != nil {
		return nil, err
	}
	path, err := spec.Build(params)
	if err != nil {
		return nil, err
	}
	body, err := s.client.getStats(path)
	if err != nil {
		return nil, err
	}
	return record.FromJSON(body, spec.Shape, spec.DataPath...)
}

// Teams lists every NHL team across all seasons.
func (s *StatsConnector) Teams() (record.Sequence, error) {
	seq, err := s.fetch("teams", nil)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	return seq, nil
}

// ActiveTeams derives the three-letter abbreviations of teams active in a
// season from the goalie summary, deduplicated, in no particular order.
func (s *StatsConnector) ActiveTeams(season string) ([]string, error) {
	seasonID, err := catalog.NormalizeSeason(season)
	if err != nil {
		return nil, err
	}
	goalies, err := s.fetch("goalie-summary", map[string]string{
		"cayenneExp": "seasonId=" + seasonID,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching goalie summary: %w", err)
	}

	seen := make(map[string]bool)
	var teams []string
	for _, g := range goalies {
		abbrev := g.Str("teamAbbrevs")
		if len(abbrev) != 3 || seen[abbrev] {
			continue
		}
		seen[abbrev] = true
		teams = append(teams, abbrev)
	}
	return teams, nil
}

// Leaders returns the leaders for a statistical attribute, pos is "skaters"
// or "goalies".
func (s *StatsConnector) Leaders(pos, attr string) (record.Sequence, error) {
	seq, err := s.fetch("leaders", map[string]string{"pos": pos, "attr": attr})
	if err != nil {
		return nil, fmt.Errorf("fetching leaders: %w", err)
	}
	return seq, nil
}

// PlayerSummary pages through the summary report for "skater" or "goalie"
// until totalPlayers rows have been requested, appending pages in order.
func (s *StatsConnector) PlayerSummary(pos, season string, totalPlayers int) (record.Sequence, error) {
	if totalPlayers <= 0 {
		totalPlayers = 1000
	}
	var out record.Sequence
	for start := 0; start < totalPlayers; start += summaryPageSize {
		page, err := s.fetch("player-summary", map[string]string{
			"pos":      pos,
			"seasonId": season,
			"start":    strconv.Itoa(start),
			"limit":    strconv.Itoa(summaryPageSize),
		})
		if err != nil {
			return nil, fmt.Errorf("fetching player summary: %w", err)
		}
		out = append(out, page...)
		if len(page) < summaryPageSize {
			break
		}
	}
	return out, nil
}

// TeamSummary returns the per-team statistics summary for a season.
func (s *StatsConnector) TeamSummary(season string) (record.Sequence, error) {
	seq, err := s.fetch("team-summary", map[string]string{"seasonId": season})
	if err != nil {
		return nil, fmt.Errorf("fetching team summary: %w", err)
	}
	return seq, nil
}

// Seasons lists season metadata records.
func (s *StatsConnector) Seasons() (record.Sequence, error) {
	return s.fetch("seasons", nil)
}

// Franchises lists NHL franchises.
func (s *StatsConnector) Franchises() (record.Sequence, error) {
	return s.fetch("franchises", nil)
}

// Glossary lists the stats glossary terms.
func (s *StatsConnector) Glossary() (record.Sequence, error) {
	return s.fetch("glossary", nil)
}

// Config returns the stats API report configuration.
func (s *StatsConnector) Config() (record.Record, error) {
	seq, err := s.fetch("config", nil)
	if err != nil {
		return nil, err
	}
	return seq[0], nil
}

// ShiftCharts returns the shift chart rows for a game.
func (s *StatsConnector) ShiftCharts(gameID int) (record.Sequence, error) {
	seq, err := s.fetch("shift-charts", map[string]string{
		"cayenneExp": fmt.Sprintf("gameId=%d", gameID),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching shift charts: %w", err)
	}
	return seq, nil
}

// Draft lists draft years and rounds.
func (s *StatsConnector) Draft() (record.Sequence, error) {
	return s.fetch("draft", nil)
}
