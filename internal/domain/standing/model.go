package standing

// Record is one team's row in a season standings table, as published by the
// upstream NFL feed. Counter fields default to zero when the feed omits them.
type Record struct {
	SeasonType     int
	Season         int
	Conference     string
	Division       string
	Team           string
	Name           string
	Wins           int
	Losses         int
	Ties           int
	Percentage     float64
	PointsFor      int
	PointsAgainst  int
	NetPoints      int
	Touchdowns     int
	DivisionWins   int
	DivisionLosses int
	DivisionTies   int
	ConferenceWins   int
	ConferenceLosses int
	ConferenceTies   int
	TeamID         int
	GlobalTeamID   int
	DivisionRank   int
	ConferenceRank int
	HomeWins       int
	HomeLosses     int
	HomeTies       int
	AwayWins       int
	AwayLosses     int
	AwayTies       int
	Streak         int
}

// ReconcileCounts reports how a reconciliation run split its batch.
type ReconcileCounts struct {
	Inserted int
	Updated  int
}
