package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tonyprice/nhldata/internal/models"
	"github.com/tonyprice/nhldata/internal/repository/memory"
	"github.com/tonyprice/nhldata/nhl"
	"github.com/tonyprice/nhldata/record"
)

// WebAPI is the slice of the web connector the bot needs.
type WebAPI interface {
	Scores(date string) (record.Record, error)
	Standings(date string) (record.Sequence, error)
	Roster(team, season string) (record.Sequence, error)
	ClubSchedule(team, window string) (record.Record, error)
}

// StatsAPI is the slice of the stats connector the bot needs.
type StatsAPI interface {
	Teams() (record.Sequence, error)
	Leaders(pos, attr string) (record.Sequence, error)
}

type StatsService struct {
	web   WebAPI
	stats StatsAPI
	repo  *memory.Repository
}

func NewStatsService(web WebAPI, stats StatsAPI, repo *memory.Repository) *StatsService {
	return &StatsService{web: web, stats: stats, repo: repo}
}

// GetScores formats the scores for a date, "now" when empty.
func (s *StatsService) GetScores(date string) (string, error) {
	if date == "" {
		date = "now"
	}
	scores, err := s.web.Scores(date)
	if err != nil {
		return "", fmt.Errorf("error fetching scores: %w", err)
	}

	games := scores.Seq("games")
	if len(games) == 0 {
		return "No games scheduled.", nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏒 *Scores — %s*\n\n", scores.Str("currentDate")))
	for _, game := range games {
		away := game.Rec("awayTeam")
		home := game.Rec("homeTeam")
		sb.WriteString(fmt.Sprintf("%s %d @ %s %d",
			away.Str("abbrev"), away.Int("score"),
			home.Str("abbrev"), home.Int("score"),
		))
		switch game.Str("gameState") {
		case "OFF", "FINAL":
			sb.WriteString(" (Final)")
		case "LIVE", "CRIT":
			sb.WriteString(" (Live)")
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// GetStandings formats the current league standings in upstream order.
func (s *StatsService) GetStandings() (string, error) {
	standings, err := s.web.Standings("now")
	if err != nil {
		return "", fmt.Errorf("error fetching standings: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for i, row := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s* %d GP, %d-%d-%d, %d pts\n",
			i+1,
			row.Str("teamAbbrev"),
			row.Int("gamesPlayed"),
			row.Int("wins"),
			row.Int("losses"),
			row.Int("otLosses"),
			row.Int("points"),
		))
	}
	return sb.String(), nil
}

// GetRoster resolves the team argument and formats its roster. Season is
// "2023" style or empty for the current roster.
func (s *StatsService) GetRoster(teamArg, season string) (string, error) {
	team, err := s.resolveTeam(teamArg)
	if err != nil {
		return "", err
	}

	roster, err := s.web.Roster(team, season)
	if err != nil {
		return "", fmt.Errorf("error fetching roster: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s Roster*\n\n", team))
	for _, player := range roster {
		sb.WriteString(fmt.Sprintf("#%d %s %s (%s)\n",
			player.Int("sweaterNumber"),
			player.Str("firstName"),
			player.Str("lastName"),
			player.Str("positionCode"),
		))
	}
	return sb.String(), nil
}

// GetLeaders formats the top of a statistical category, pos is "skaters" or
// "goalies".
func (s *StatsService) GetLeaders(pos, attr string) (string, error) {
	leaders, err := s.stats.Leaders(pos, attr)
	if err != nil {
		return "", fmt.Errorf("error fetching leaders: %w", err)
	}

	if len(leaders) > 10 {
		leaders = leaders[:10]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📈 *Leaders — %s*\n\n", attr))
	for i, leader := range leaders {
		sb.WriteString(fmt.Sprintf("%d. %s — %v\n", i+1, playerName(leader), leader["value"]))
	}
	return sb.String(), nil
}

// GetSchedule resolves the team argument and formats its upcoming games.
func (s *StatsService) GetSchedule(teamArg string) (string, error) {
	team, err := s.resolveTeam(teamArg)
	if err != nil {
		return "", err
	}

	schedule, err := s.web.ClubSchedule(team, "now")
	if err != nil {
		return "", fmt.Errorf("error fetching schedule: %w", err)
	}

	var upcoming record.Sequence
	for _, game := range schedule.Seq("games") {
		if game.Str("gameState") == "FUT" {
			upcoming = append(upcoming, game)
		}
		if len(upcoming) == 10 {
			break
		}
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("No upcoming games for %s.", team), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *%s Upcoming Games*\n\n", team))
	for _, game := range upcoming {
		sb.WriteString(fmt.Sprintf("%s: %s @ %s\n",
			game.Str("gameDate"),
			game.Rec("awayTeam").Str("abbrev"),
			game.Rec("homeTeam").Str("abbrev"),
		))
	}
	return sb.String(), nil
}

// resolveTeam turns a user-supplied team argument into a tricode: an exact
// tricode match first, otherwise the closest directory name above a fuzzy
// similarity threshold.
func (s *StatsService) resolveTeam(arg string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(arg))
	for _, code := range nhl.TeamAbbrevs {
		if code == upper {
			return code, nil
		}
	}

	directory, err := s.teamDirectory()
	if err != nil {
		return "", err
	}

	var best *models.Team
	bestScore := 0.0
	threshold := 0.5
	needle := strings.ToLower(strings.TrimSpace(arg))

	for i, team := range directory.Teams {
		name := strings.ToLower(team.FullName)
		distance := fuzzy.LevenshteinDistance(needle, name)
		maxLen := float64(max(len(needle), len(name)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = &directory.Teams[i]
		}
	}

	if best == nil {
		return "", fmt.Errorf("no team matching %q", arg)
	}
	return best.TriCode, nil
}

func (s *StatsService) teamDirectory() (*models.TeamDirectory, error) {
	directory := s.repo.GetTeamDirectory()
	if directory != nil && time.Since(directory.LastUpdated) < 24*time.Hour {
		return directory, nil
	}

	teams, err := s.stats.Teams()
	if err != nil {
		return nil, fmt.Errorf("error fetching team directory: %w", err)
	}

	fresh := &models.TeamDirectory{LastUpdated: time.Now()}
	for _, team := range teams {
		code := team.Str("triCode")
		if len(code) != 3 {
			continue
		}
		fresh.Teams = append(fresh.Teams, models.Team{
			TriCode:  code,
			FullName: team.Str("fullName"),
		})
	}

	s.repo.SaveTeamDirectory(fresh)
	slog.Info("Refreshed team directory", "teams", len(fresh.Teams))
	return fresh, nil
}

func playerName(rec record.Record) string {
	if name := rec.Str("fullName"); name != "" {
		return name
	}
	first := rec.Str("firstName")
	last := rec.Str("lastName")
	return strings.TrimSpace(first + " " + last)
}
