package nhl

// TeamAbbrevs is the set of NHL team tricodes the web API accepts in path
// segments. Historical codes for relocated franchises are included so past
// rosters stay reachable.
var TeamAbbrevs = []string{
	"ANA", "ARI", "BOS", "BUF", "CAR", "CBJ", "CGY", "CHI", "COL", "DAL",
	"DET", "EDM", "FLA", "LAK", "MIN", "MTL", "NJD", "NSH", "NYI", "NYR",
	"OTT", "PHI", "PIT", "SEA", "SJS", "STL", "TBL", "TOR", "UTA", "VAN",
	"VGK", "WPG", "WSH",
}
