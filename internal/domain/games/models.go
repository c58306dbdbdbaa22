package games

// WLoc values describe the game location from the winner's point of view.
const (
	LocHome    = "H"
	LocAway    = "A"
	LocNeutral = "N"
)

// TeamLine holds one team's box-score statistics for a single game.
type TeamLine struct {
	FGM  int `json:"fgm"`
	FGA  int `json:"fga"`
	FGM3 int `json:"fgm3"`
	FGA3 int `json:"fga3"`
	FTM  int `json:"ftm"`
	FTA  int `json:"fta"`
	OR   int `json:"or"`
	DR   int `json:"dr"`
	Ast  int `json:"ast"`
	TO   int `json:"to"`
	Stl  int `json:"stl"`
	Blk  int `json:"blk"`
	PF   int `json:"pf"`
}

// BoxScore holds the detailed per-team statistics for one game.
type BoxScore struct {
	Winner TeamLine `json:"winner"`
	Loser  TeamLine `json:"loser"`
}

// Game is one row of a results table. The compact fields are always
// present; Box is nil for rows sourced from the compact-only era.
type Game struct {
	Season  int       `json:"season"`
	DayNum  int       `json:"dayNum"`
	WTeamID int       `json:"wTeamId"`
	WScore  int       `json:"wScore"`
	LTeamID int       `json:"lTeamId"`
	LScore  int       `json:"lScore"`
	WLoc    string    `json:"wLoc"`
	NumOT   int       `json:"numOt"`
	Box     *BoxScore `json:"box,omitempty"`
}

// Detailed reports whether the row carries box-score statistics.
func (g Game) Detailed() bool {
	return g.Box != nil
}

// Clone returns a deep copy so callers cannot reach internal state
// through the Box pointer.
func (g Game) Clone() Game {
	if g.Box != nil {
		box := *g.Box
		g.Box = &box
	}
	return g
}

// WithoutBox returns a copy of the game with the box score stripped,
// leaving only the compact fields.
func (g Game) WithoutBox() Game {
	g.Box = nil
	return g
}
