package roster

// Player is one active-roster entry from the upstream NFL feed. PlayerID is
// the feed's global numeric identity: the same player keeps the same id even
// after changing teams, so the latest reconciled team code wins.
type Player struct {
	PlayerID         int
	Team             string
	TeamID           int
	GlobalTeamID     int
	Number           int
	FirstName        string
	LastName         string
	ShortName        string
	Position         string
	PositionCategory string
	FantasyPosition  string
	Status           string
	Active           bool
	HeightFeet       int
	HeightInches     int
	Weight           int
	BirthDate        string
	College          string
	Experience       int
	PhotoURL         string
}

// ReconcileCounts reports how a reconciliation run split its batch.
type ReconcileCounts struct {
	Inserted int
	Updated  int
}
