package nhl

import (
	"github.com/tonyprice/nhldata/catalog"
	"github.com/tonyprice/nhldata/record"
)

// webCalls maps logical names to api-web.nhle.com endpoints. Game-type
// defaults are the API codes themselves (2 regular, 3 playoffs) since
// defaults substitute verbatim.
var webCalls = catalog.New(
	catalog.CallSpec{
		Name:  "seasons",
		Path:  "season",
		Shape: record.ArrayOfObjects,
	},
	catalog.CallSpec{
		Name: "team-seasons",
		Path: "roster-season/{team}",
		Params: []catalog.Param{
			{Name: "team", Required: true, Allowed: TeamAbbrevs},
		},
		Shape: record.ArrayOfObjects,
	},
	catalog.CallSpec{
		Name: "roster",
		Path: "roster/{team}/{season}",
		Params: []catalog.Param{
			{Name: "team", Required: true, Allowed: TeamAbbrevs},
			{Name: "season", Kind: catalog.Season, Default: "current"},
		},
		Shape:            record.GroupedArrays,
		CollapseDefaults: true,
	},
	catalog.CallSpec{
		Name: "player-info",
		Path: "player/{player}/landing",
		Params: []catalog.Param{
			{Name: "player", Kind: catalog.Int, Required: true},
		},
		Shape:            record.SingleObject,
		CollapseDefaults: true,
	},
	catalog.CallSpec{
		Name: "player-game-log",
		Path: "player/{player}/game-log/{season}/{gametype}",
		Params: []catalog.Param{
			{Name: "player", Kind: catalog.Int, Required: true},
			{Name: "season", Kind: catalog.Season, Required: true},
			{Name: "gametype", Kind: catalog.GameType, Default: "2"},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"gameLog"},
	},
	catalog.CallSpec{
		Name: "player-game-log-now",
		Path: "player/{player}/game-log/now",
		Params: []catalog.Param{
			{Name: "player", Kind: catalog.Int, Required: true},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"gameLog"},
	},
	catalog.CallSpec{
		Name: "stat-leaders",
		Path: "{kind}-stats-leaders/{season}/{gametype}",
		Params: []catalog.Param{
			{Name: "kind", Required: true, Allowed: []string{"skater", "goalie"}},
			{Name: "season", Kind: catalog.Season, Required: true},
			{Name: "gametype", Kind: catalog.GameType, Default: "2"},
			{Name: "categories", In: catalog.InQuery},
			{Name: "limit", Kind: catalog.Int, In: catalog.InQuery},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "stat-leaders-current",
		Path: "{kind}-stats-leaders/current",
		Params: []catalog.Param{
			{Name: "kind", Required: true, Allowed: []string{"skater", "goalie"}},
			{Name: "categories", In: catalog.InQuery},
			{Name: "limit", Kind: catalog.Int, In: catalog.InQuery},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "standings",
		Path: "standings/{date}",
		Params: []catalog.Param{
			{Name: "date", Kind: catalog.Date, Default: "now"},
		},
		Shape:            record.ArrayOfObjects,
		DataPath:         []string{"standings"},
		CollapseDefaults: true,
	},
	catalog.CallSpec{
		Name:  "standings-info",
		Path:  "standings-season",
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "club-stats",
		Path: "club-stats/{team}/{gametype}",
		Params: []catalog.Param{
			{Name: "team", Required: true, Allowed: TeamAbbrevs},
			{Name: "gametype", Kind: catalog.GameType, Default: "now"},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "club-schedule-season",
		Path: "club-schedule-season/{team}/{window}",
		Params: []catalog.Param{
			{Name: "team", Required: true, Allowed: TeamAbbrevs},
			{Name: "window", Default: "now"},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "league-schedule",
		Path: "schedule/{date}",
		Params: []catalog.Param{
			{Name: "date", Kind: catalog.Date, Default: "now"},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "scores",
		Path: "score/{date}",
		Params: []catalog.Param{
			{Name: "date", Kind: catalog.Date, Default: "now"},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name:  "scoreboard",
		Path:  "scoreboard/now",
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "gamecenter-landing",
		Path: "gamecenter/{game}/landing",
		Params: []catalog.Param{
			{Name: "game", Kind: catalog.Int, Required: true},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "gamecenter-boxscore",
		Path: "gamecenter/{game}/boxscore",
		Params: []catalog.Param{
			{Name: "game", Kind: catalog.Int, Required: true},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "gamecenter-play-by-play",
		Path: "gamecenter/{game}/play-by-play",
		Params: []catalog.Param{
			{Name: "game", Kind: catalog.Int, Required: true},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "meta",
		Path: "meta",
		Params: []catalog.Param{
			{Name: "players", In: catalog.InQuery},
			{Name: "teams", In: catalog.InQuery},
		},
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "prospects",
		Path: "prospects/{team}",
		Params: []catalog.Param{
			{Name: "team", Required: true, Allowed: TeamAbbrevs},
		},
		Shape:            record.GroupedArrays,
		CollapseDefaults: true,
	},
	catalog.CallSpec{
		Name: "draft-rankings",
		Path: "draft/rankings/{year}/{category}",
		Params: []catalog.Param{
			{Name: "year", Kind: catalog.Int, Required: true},
			{Name: "category", Required: true, Allowed: []string{"1", "2", "3", "4"}},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"rankings"},
	},
	catalog.CallSpec{
		Name:     "draft-rankings-now",
		Path:     "draft/rankings/now",
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"rankings"},
	},
	catalog.CallSpec{
		Name: "tv-schedule",
		Path: "network/tv-schedule/{date}",
		Params: []catalog.Param{
			{Name: "date", Kind: catalog.Date, Default: "now"},
		},
		Shape: record.SingleObject,
	},
)

// statsCalls maps logical names to api.nhle.com/stats/rest endpoints. The
// stats API wraps every collection payload in a top-level "data" key.
var statsCalls = catalog.New(
	catalog.CallSpec{
		Name:     "teams",
		Path:     "team",
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name: "goalie-summary",
		Path: "goalie/summary",
		Params: []catalog.Param{
			{Name: "limit", In: catalog.InQuery, Default: "-1"},
			{Name: "cayenneExp", In: catalog.InQuery},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name: "leaders",
		Path: "leaders/{pos}/{attr}",
		Params: []catalog.Param{
			{Name: "pos", Required: true, Allowed: []string{"skaters", "goalies"}},
			{Name: "attr", Required: true},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name: "player-summary",
		Path: "{pos}/summary",
		Params: []catalog.Param{
			{Name: "pos", Required: true, Allowed: []string{"skater", "goalie"}},
			{Name: "seasonId", Kind: catalog.Season, Required: true, In: catalog.InQuery},
			{Name: "limit", Kind: catalog.Int, In: catalog.InQuery, Default: "100"},
			{Name: "start", Kind: catalog.Int, In: catalog.InQuery},
			{Name: "cayenneExp", In: catalog.InQuery},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name: "team-summary",
		Path: "team/summary",
		Params: []catalog.Param{
			{Name: "seasonId", Kind: catalog.Season, Required: true, In: catalog.InQuery},
			{Name: "limit", In: catalog.InQuery, Default: "-1"},
			{Name: "start", Kind: catalog.Int, In: catalog.InQuery},
			{Name: "cayenneExp", In: catalog.InQuery},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name:     "seasons",
		Path:     "season",
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name:     "franchises",
		Path:     "franchise",
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name:     "glossary",
		Path:     "glossary",
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name:  "config",
		Path:  "config",
		Shape: record.SingleObject,
	},
	catalog.CallSpec{
		Name: "shift-charts",
		Path: "shiftcharts",
		Params: []catalog.Param{
			{Name: "cayenneExp", In: catalog.InQuery, Required: true},
		},
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
	catalog.CallSpec{
		Name:     "draft",
		Path:     "draft",
		Shape:    record.ArrayOfObjects,
		DataPath: []string{"data"},
	},
)
