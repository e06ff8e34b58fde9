package postgres

import "time"

type rosterTableModel struct {
	ID               int64     `db:"id"`
	PlayerID         int       `db:"player_id"`
	Team             string    `db:"team"`
	TeamID           int       `db:"team_id"`
	GlobalTeamID     int       `db:"global_team_id"`
	Number           int       `db:"number"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	ShortName        string    `db:"short_name"`
	Position         string    `db:"position"`
	PositionCategory string    `db:"position_category"`
	FantasyPosition  string    `db:"fantasy_position"`
	Status           string    `db:"status"`
	Active           bool      `db:"active"`
	HeightFeet       int       `db:"height_feet"`
	HeightInches     int       `db:"height_inches"`
	Weight           int       `db:"weight"`
	BirthDate        string    `db:"birth_date"`
	College          string    `db:"college"`
	Experience       int       `db:"experience"`
	PhotoURL         string    `db:"photo_url"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type rosterInsertModel struct {
	PlayerID         int    `db:"player_id"`
	Team             string `db:"team"`
	TeamID           int    `db:"team_id"`
	GlobalTeamID     int    `db:"global_team_id"`
	Number           int    `db:"number"`
	FirstName        string `db:"first_name"`
	LastName         string `db:"last_name"`
	ShortName        string `db:"short_name"`
	Position         string `db:"position"`
	PositionCategory string `db:"position_category"`
	FantasyPosition  string `db:"fantasy_position"`
	Status           string `db:"status"`
	Active           bool   `db:"active"`
	HeightFeet       int    `db:"height_feet"`
	HeightInches     int    `db:"height_inches"`
	Weight           int    `db:"weight"`
	BirthDate        string `db:"birth_date"`
	College          string `db:"college"`
	Experience       int    `db:"experience"`
	PhotoURL         string `db:"photo_url"`
}
