package httpapi

import (
	"context"
	"encoding/xml"
	"net/http"

	"github.com/statside/nfl-middleware/internal/domain/roster"
	"github.com/statside/nfl-middleware/internal/domain/standing"
	"github.com/valyala/bytebufferpool"
)

// XML rendering mirrors the upstream feed shapes so clients built against the
// provider can point at this service unchanged.

type xmlStandingList struct {
	XMLName xml.Name      `xml:"ArrayOfStanding"`
	Items   []xmlStanding `xml:"Standing"`
}

type xmlStanding struct {
	SeasonType       int     `xml:"SeasonType"`
	Season           int     `xml:"Season"`
	Conference       string  `xml:"Conference"`
	Division         string  `xml:"Division"`
	Team             string  `xml:"Team"`
	Name             string  `xml:"Name"`
	Wins             int     `xml:"Wins"`
	Losses           int     `xml:"Losses"`
	Ties             int     `xml:"Ties"`
	Percentage       float64 `xml:"Percentage"`
	PointsFor        int     `xml:"PointsFor"`
	PointsAgainst    int     `xml:"PointsAgainst"`
	NetPoints        int     `xml:"NetPoints"`
	Touchdowns       int     `xml:"Touchdowns"`
	DivisionWins     int     `xml:"DivisionWins"`
	DivisionLosses   int     `xml:"DivisionLosses"`
	DivisionTies     int     `xml:"DivisionTies"`
	ConferenceWins   int     `xml:"ConferenceWins"`
	ConferenceLosses int     `xml:"ConferenceLosses"`
	ConferenceTies   int     `xml:"ConferenceTies"`
	TeamID           int     `xml:"TeamID"`
	GlobalTeamID     int     `xml:"GlobalTeamID"`
	DivisionRank     int     `xml:"DivisionRank"`
	ConferenceRank   int     `xml:"ConferenceRank"`
	HomeWins         int     `xml:"HomeWins"`
	HomeLosses       int     `xml:"HomeLosses"`
	HomeTies         int     `xml:"HomeTies"`
	AwayWins         int     `xml:"AwayWins"`
	AwayLosses       int     `xml:"AwayLosses"`
	AwayTies         int     `xml:"AwayTies"`
	Streak           int     `xml:"Streak"`
}

type xmlPlayerList struct {
	XMLName xml.Name    `xml:"ArrayOfPlayer"`
	Items   []xmlPlayer `xml:"Player"`
}

type xmlPlayer struct {
	PlayerID         int    `xml:"PlayerID"`
	Team             string `xml:"Team"`
	TeamID           int    `xml:"TeamID"`
	GlobalTeamID     int    `xml:"GlobalTeamID"`
	Number           int    `xml:"Number"`
	FirstName        string `xml:"FirstName"`
	LastName         string `xml:"LastName"`
	ShortName        string `xml:"ShortName"`
	Position         string `xml:"Position"`
	PositionCategory string `xml:"PositionCategory"`
	FantasyPosition  string `xml:"FantasyPosition"`
	Status           string `xml:"Status"`
	Active           bool   `xml:"Active"`
	HeightFeet       int    `xml:"HeightFeet"`
	HeightInches     int    `xml:"HeightInches"`
	Weight           int    `xml:"Weight"`
	BirthDate        string `xml:"BirthDate"`
	College          string `xml:"College"`
	Experience       int    `xml:"Experience"`
	PhotoURL         string `xml:"PhotoUrl"`
}

func writeStandingsXML(ctx context.Context, w http.ResponseWriter, records []standing.Record) {
	items := make([]xmlStanding, 0, len(records))
	for _, record := range records {
		items = append(items, xmlStanding(standingToDTO(record)))
	}
	writeXML(ctx, w, xmlStandingList{Items: items})
}

func writePlayersXML(ctx context.Context, w http.ResponseWriter, players []roster.Player) {
	items := make([]xmlPlayer, 0, len(players))
	for _, player := range players {
		items = append(items, xmlPlayer(playerToDTO(player)))
	}
	writeXML(ctx, w, xmlPlayerList{Items: items})
}

func writeXML(ctx context.Context, w http.ResponseWriter, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeXML")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(buf).Encode(payload); err != nil {
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
