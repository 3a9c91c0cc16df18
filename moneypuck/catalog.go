package moneypuck

import (
	"github.com/tonyprice/nhldata/catalog"
	"github.com/tonyprice/nhldata/record"
)

var (
	fileTypes = []string{"skaters", "goalies", "lines", "teams"}
	positions = []string{"skaters", "goalies"}
	gametypes = []string{"regular", "playoffs"}
)

// fileCalls maps logical names to MoneyPuck download paths. Game types are
// literal path segments here, unlike the NHL API's numeric codes. Season
// summaries are published for lists of seasons from 2007 on, single-season
// files from 2006, both up to the last completed calendar year.
var fileCalls = catalog.New(
	catalog.CallSpec{
		Name: "season-stats",
		Path: "seasonSummary/{season}/{gametype}/{file_type}.csv",
		Params: []catalog.Param{
			{Name: "season", Kind: catalog.Year, MinYear: 2007, Required: true},
			{Name: "gametype", Required: true, Allowed: gametypes},
			{Name: "file_type", Required: true, Allowed: fileTypes},
		},
	},
	catalog.CallSpec{
		Name: "shots",
		Path: "shots_{season}.zip",
		Params: []catalog.Param{
			{Name: "season", Kind: catalog.Year, MinYear: 2006, Required: true},
		},
	},
	catalog.CallSpec{
		Name: "player-game-by-game",
		Path: "careers/gameByGame/{gametype}/{position}/{player}.csv",
		Params: []catalog.Param{
			{Name: "gametype", Required: true, Allowed: gametypes},
			{Name: "position", Required: true, Allowed: positions},
			{Name: "player", Kind: catalog.Int, Required: true},
		},
	},
	catalog.CallSpec{
		Name: "player-per-season",
		Path: "careers/perSeason/{gametype}/{position}/{player}.csv",
		Params: []catalog.Param{
			{Name: "gametype", Required: true, Allowed: gametypes},
			{Name: "position", Required: true, Allowed: positions},
			{Name: "player", Kind: catalog.Int, Required: true},
		},
	},
	catalog.CallSpec{
		Name: "team-game-by-game",
		Path: "careers/gameByGame/{gametype}/teams/{team}.csv",
		Params: []catalog.Param{
			{Name: "gametype", Required: true, Allowed: gametypes},
			{Name: "team", Required: true},
		},
	},
)

// seasonSummaryColumns declares the semantic types of the identifying and
// volume columns in the season summary files. Undeclared columns pass
// through as strings.
var seasonSummaryColumns = map[string]map[string]record.ColumnType{
	"skaters": {
		"playerId":     record.Int,
		"season":       record.Int,
		"games_played": record.Int,
		"icetime":      record.Float,
	},
	"goalies": {
		"playerId":     record.Int,
		"season":       record.Int,
		"games_played": record.Int,
		"icetime":      record.Float,
	},
	"lines": {
		"lineId":       record.Int,
		"season":       record.Int,
		"games_played": record.Int,
		"icetime":      record.Float,
	},
	"teams": {
		"season":       record.Int,
		"games_played": record.Int,
		"iceTime":      record.Float,
	},
}

// shotColumns types the heavy-use columns of the shots files.
var shotColumns = map[string]record.ColumnType{
	"shotID":          record.Int,
	"season":          record.Int,
	"game_id":         record.Int,
	"xCord":           record.Float,
	"yCord":           record.Float,
	"shotDistance":    record.Float,
	"shotAngle":       record.Float,
	"xGoal":           record.Float,
	"shooterPlayerId": record.Int,
	"goalieIdForShot": record.Int,
}
