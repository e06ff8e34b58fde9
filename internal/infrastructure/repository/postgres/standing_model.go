package postgres

import "time"

type standingTableModel struct {
	ID               int64     `db:"id"`
	EndpointKey      string    `db:"endpoint_key"`
	SeasonType       int       `db:"season_type"`
	Season           int       `db:"season"`
	Conference       string    `db:"conference"`
	Division         string    `db:"division"`
	Team             string    `db:"team"`
	Name             string    `db:"name"`
	Wins             int       `db:"wins"`
	Losses           int       `db:"losses"`
	Ties             int       `db:"ties"`
	Percentage       float64   `db:"percentage"`
	PointsFor        int       `db:"points_for"`
	PointsAgainst    int       `db:"points_against"`
	NetPoints        int       `db:"net_points"`
	Touchdowns       int       `db:"touchdowns"`
	DivisionWins     int       `db:"division_wins"`
	DivisionLosses   int       `db:"division_losses"`
	DivisionTies     int       `db:"division_ties"`
	ConferenceWins   int       `db:"conference_wins"`
	ConferenceLosses int       `db:"conference_losses"`
	ConferenceTies   int       `db:"conference_ties"`
	TeamID           int       `db:"team_id"`
	GlobalTeamID     int       `db:"global_team_id"`
	DivisionRank     int       `db:"division_rank"`
	ConferenceRank   int       `db:"conference_rank"`
	HomeWins         int       `db:"home_wins"`
	HomeLosses       int       `db:"home_losses"`
	HomeTies         int       `db:"home_ties"`
	AwayWins         int       `db:"away_wins"`
	AwayLosses       int       `db:"away_losses"`
	AwayTies         int       `db:"away_ties"`
	Streak           int       `db:"streak"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type standingInsertModel struct {
	EndpointKey      string  `db:"endpoint_key"`
	SeasonType       int     `db:"season_type"`
	Season           int     `db:"season"`
	Conference       string  `db:"conference"`
	Division         string  `db:"division"`
	Team             string  `db:"team"`
	Name             string  `db:"name"`
	Wins             int     `db:"wins"`
	Losses           int     `db:"losses"`
	Ties             int     `db:"ties"`
	Percentage       float64 `db:"percentage"`
	PointsFor        int     `db:"points_for"`
	PointsAgainst    int     `db:"points_against"`
	NetPoints        int     `db:"net_points"`
	Touchdowns       int     `db:"touchdowns"`
	DivisionWins     int     `db:"division_wins"`
	DivisionLosses   int     `db:"division_losses"`
	DivisionTies     int     `db:"division_ties"`
	ConferenceWins   int     `db:"conference_wins"`
	ConferenceLosses int     `db:"conference_losses"`
	ConferenceTies   int     `db:"conference_ties"`
	TeamID           int     `db:"team_id"`
	GlobalTeamID     int     `db:"global_team_id"`
	DivisionRank     int     `db:"division_rank"`
	ConferenceRank   int     `db:"conference_rank"`
	HomeWins         int     `db:"home_wins"`
	HomeLosses       int     `db:"home_losses"`
	HomeTies         int     `db:"home_ties"`
	AwayWins         int     `db:"away_wins"`
	AwayLosses       int     `db:"away_losses"`
	AwayTies         int     `db:"away_ties"`
	Streak           int     `db:"streak"`
}
