package feed

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/statside/nfl-middleware/internal/domain/roster"
	"github.com/statside/nfl-middleware/internal/domain/standing"
)

// Standings maps every <Standing> child to a record, preserving document
// order. Missing or unparsable fields fall back to zero values so a partial
// row from the provider still yields a usable record.
func (d *Document) Standings() []standing.Record {
	if d == nil || d.root == nil || d.kind != KindStandings {
		return nil
	}

	elements := d.root.SelectElements("Standing")
	out := make([]standing.Record, 0, len(elements))
	for _, el := range elements {
		out = append(out, standing.Record{
			SeasonType:       childInt(el, "SeasonType"),
			Season:           childInt(el, "Season"),
			Conference:       childText(el, "Conference"),
			Division:         childText(el, "Division"),
			Team:             childText(el, "Team"),
			Name:             childText(el, "Name"),
			Wins:             childInt(el, "Wins"),
			Losses:           childInt(el, "Losses"),
			Ties:             childInt(el, "Ties"),
			Percentage:       childFloat(el, "Percentage"),
			PointsFor:        childInt(el, "PointsFor"),
			PointsAgainst:    childInt(el, "PointsAgainst"),
			NetPoints:        childInt(el, "NetPoints"),
			Touchdowns:       childInt(el, "Touchdowns"),
			DivisionWins:     childInt(el, "DivisionWins"),
			DivisionLosses:   childInt(el, "DivisionLosses"),
			DivisionTies:     childInt(el, "DivisionTies"),
			ConferenceWins:   childInt(el, "ConferenceWins"),
			ConferenceLosses: childInt(el, "ConferenceLosses"),
			ConferenceTies:   childInt(el, "ConferenceTies"),
			TeamID:           childInt(el, "TeamID"),
			GlobalTeamID:     childInt(el, "GlobalTeamID"),
			DivisionRank:     childInt(el, "DivisionRank"),
			ConferenceRank:   childInt(el, "ConferenceRank"),
			HomeWins:         childInt(el, "HomeWins"),
			HomeLosses:       childInt(el, "HomeLosses"),
			HomeTies:         childInt(el, "HomeTies"),
			AwayWins:         childInt(el, "AwayWins"),
			AwayLosses:       childInt(el, "AwayLosses"),
			AwayTies:         childInt(el, "AwayTies"),
			Streak:           childInt(el, "Streak"),
		})
	}

	return out
}

// Players maps every <Player> child to a roster entry, preserving document
// order with the same default-on-absence rules as Standings.
func (d *Document) Players() []roster.Player {
	if d == nil || d.root == nil || d.kind != KindPlayers {
		return nil
	}

	elements := d.root.SelectElements("Player")
	out := make([]roster.Player, 0, len(elements))
	for _, el := range elements {
		out = append(out, roster.Player{
			PlayerID:         childInt(el, "PlayerID"),
			Team:             childText(el, "Team"),
			TeamID:           childInt(el, "TeamID"),
			GlobalTeamID:     childInt(el, "GlobalTeamID"),
			Number:           childInt(el, "Number"),
			FirstName:        childText(el, "FirstName"),
			LastName:         childText(el, "LastName"),
			ShortName:        childText(el, "ShortName"),
			Position:         childText(el, "Position"),
			PositionCategory: childText(el, "PositionCategory"),
			FantasyPosition:  childText(el, "FantasyPosition"),
			Status:           childText(el, "Status"),
			Active:           childBool(el, "Active"),
			HeightFeet:       childInt(el, "HeightFeet"),
			HeightInches:     childInt(el, "HeightInches"),
			Weight:           childInt(el, "Weight"),
			BirthDate:        childText(el, "BirthDate"),
			College:          childText(el, "College"),
			Experience:       childInt(el, "Experience"),
			PhotoURL:         childText(el, "PhotoUrl"),
		})
	}

	return out
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

func childInt(el *etree.Element, tag string) int {
	value, err := strconv.Atoi(childText(el, tag))
	if err != nil {
		return 0
	}
	return value
}

func childFloat(el *etree.Element, tag string) float64 {
	value, err := strconv.ParseFloat(childText(el, tag), 64)
	if err != nil {
		return 0
	}
	return value
}

func childBool(el *etree.Element, tag string) bool {
	return strings.EqualFold(childText(el, tag), "true")
}
