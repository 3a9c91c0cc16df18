package models

import "time"

// Team is one entry of the league team directory used for command argument
// resolution.
type Team struct {
	TriCode  string
	FullName string
}

// TeamDirectory is the cached list of NHL teams with its fetch time.
type TeamDirectory struct {
	Teams       []Team
	LastUpdated time.Time
}
