// Package moneypuck downloads the CSV data files MoneyPuck publishes at
// https://moneypuck.com/data.htm and normalizes them into records. Season
// summaries are plain CSVs fetched per season; the shot files are zip
// archives with one CSV member.
package moneypuck

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/tonyprice/nhldata/record"
	"github.com/tonyprice/nhldata/transport"
)

const (
	defaultBaseURL      = "https://moneypuck.com/moneypuck/playerData"
	defaultShotsBaseURL = "https://peter-tanner.com/moneypuck/downloads"
)

// Connector fetches MoneyPuck data files. Calls are synchronous and
// all-or-nothing: a failure on any selected file aborts the whole call with
// no partial result.
type Connector struct {
	transport *transport.Client
	base      string
	shotsBase string
}

type Option func(*Connector)

// WithTimeout sets the transport timeout. Shot archives run to tens of
// megabytes, so the default here is generous.
func WithTimeout(d time.Duration) Option {
	return func(c *Connector) { c.transport = transport.NewClient(d) }
}

// WithBaseURLs overrides the download hosts. Used by tests.
func WithBaseURLs(base, shotsBase string) Option {
	return func(c *Connector) {
		c.base = base
		c.shotsBase = shotsBase
	}
}

func New(opts ...Option) *Connector {
	c := &Connector{
		transport: transport.NewClient(2 * time.Minute),
		base:      defaultBaseURL,
		shotsBase: defaultShotsBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Connector) fetchCSV(call string, params map[string]string, cols map[string]record.ColumnType) (record.Sequence, error) {
	spec, err := fileCalls.Lookup(call)
	if err != nil {
		return nil, err
	}
	path, err := spec.Build(params)
	if err != nil {
		return nil, err
	}
	body, err := c.transport.Get(c.base + "/" + path)
	if err != nil {
		return nil, err
	}
	return record.FromCSV(bytes.NewReader(body), record.CSVOptions{ColumnTypes: cols})
}

// SeasonStats fetches the season summary file of fileType ("skaters",
// "goalies", "lines" or "teams") for every requested season and gametype,
// concatenating rows in requested-season order. An empty season list returns
// an empty sequence without fetching anything.
func (c *Connector) SeasonStats(fileType string, seasons []int, gametype string) (record.Sequence, error) {
	out := record.Sequence{}
	for _, season := range seasons {
		seq, err := c.fetchCSV("season-stats", map[string]string{
			"season":    strconv.Itoa(season),
			"gametype":  gametype,
			"file_type": fileType,
		}, seasonSummaryColumns[fileType])
		if err != nil {
			return nil, fmt.Errorf("fetching %s %s for season %d: %w", gametype, fileType, season, err)
		}
		out = append(out, seq...)
	}
	return out, nil
}

// Shots downloads the shot-level archive for a season and extracts its CSV
// member.
func (c *Connector) Shots(season int) (record.Sequence, error) {
	spec, err := fileCalls.Lookup("shots")
	if err != nil {
		return nil, err
	}
	path, err := spec.Build(map[string]string{"season": strconv.Itoa(season)})
	if err != nil {
		return nil, err
	}
	body, err := c.transport.Get(c.shotsBase + "/" + path)
	if err != nil {
		return nil, fmt.Errorf("fetching shots for season %d: %w", season, err)
	}
	member := fmt.Sprintf("shots_%d.csv", season)
	return record.FromArchive(body, member, record.CSVOptions{ColumnTypes: shotColumns})
}

// PlayerGameByGame fetches a player's career game-by-game file, position is
// "skaters" or "goalies".
func (c *Connector) PlayerGameByGame(playerID int, position, gametype string) (record.Sequence, error) {
	return c.fetchCSV("player-game-by-game", map[string]string{
		"gametype": gametype,
		"position": position,
		"player":   strconv.Itoa(playerID),
	}, nil)
}

// PlayerPerSeason fetches a player's career per-season file.
func (c *Connector) PlayerPerSeason(playerID int, position, gametype string) (record.Sequence, error) {
	return c.fetchCSV("player-per-season", map[string]string{
		"gametype": gametype,
		"position": position,
		"player":   strconv.Itoa(playerID),
	}, nil)
}

// TeamGameByGame fetches a team's career game-by-game file.
func (c *Connector) TeamGameByGame(team, gametype string) (record.Sequence, error) {
	return c.fetchCSV("team-game-by-game", map[string]string{
		"gametype": gametype,
		"team":     team,
	}, nil)
}
