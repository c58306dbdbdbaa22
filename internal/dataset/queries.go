package dataset

import (
	"time"

	"ncaa-data-service/internal/domain/brackets"
	"ncaa-data-service/internal/domain/games"
	"ncaa-data-service/internal/domain/seasons"
	"ncaa-data-service/internal/domain/teams"
)

// Query names used for telemetry.
const (
	queryTeam         = "team"
	queryYears        = "years"
	querySeeds        = "seeds"
	querySlots        = "slots"
	queryRegularGames = "regular_games"
	queryTourneyGames = "tourney_games"
)

// Team looks up a team name by its integer id. An id absent from the
// directory returns a TeamNotFoundError.
func (d *Dataset) Team(id int) (string, error) {
	start := time.Now()
	name, ok := d.teams[id]
	if !ok {
		d.rec.RecordQuery(queryTeam, 0, time.Since(start))
		return "", &TeamNotFoundError{ID: id}
	}
	d.rec.RecordQuery(queryTeam, 1, time.Since(start))
	return name, nil
}

// Teams returns the team directory rows in file order.
func (d *Dataset) Teams() []teams.Team {
	return append([]teams.Team(nil), d.teamList...)
}

// Years returns the distinct season years in the order they appear in
// the seasons table. The source order is deliberately preserved; no
// sort is applied.
func (d *Dataset) Years() []int {
	start := time.Now()
	seen := make(map[int]bool, len(d.seasons))
	out := make([]int, 0, len(d.seasons))
	for _, s := range d.seasons {
		if seen[s.Year] {
			continue
		}
		seen[s.Year] = true
		out = append(out, s.Year)
	}
	d.rec.RecordQuery(queryYears, len(out), time.Since(start))
	return out
}

// Seasons returns the season metadata rows in file order.
func (d *Dataset) Seasons() []seasons.Season {
	return append([]seasons.Season(nil), d.seasons...)
}

// Seeds returns the team-id to seed-label mapping for one season. A
// season with no seed rows yields an empty map. Should a team appear
// twice within a season the last row wins; the source data is not
// expected to contain duplicates but nothing enforces that.
func (d *Dataset) Seeds(season int) map[int]string {
	start := time.Now()
	out := make(map[int]string)
	for _, s := range d.seeds {
		if s.Season == season {
			out[s.TeamID] = s.Label
		}
	}
	d.rec.RecordQuery(querySeeds, len(out), time.Since(start))
	return out
}

// Slots returns the bracket structure rows for one season, empty when
// the season has none.
func (d *Dataset) Slots(season int) []brackets.Slot {
	start := time.Now()
	out := make([]brackets.Slot, 0)
	for _, s := range d.slots {
		if s.Season == season {
			out = append(out, s)
		}
	}
	d.rec.RecordQuery(querySlots, len(out), time.Since(start))
	return out
}

// RegularGames returns regular-season games matching the filter,
// projected to the requested view. Unmatched seasons yield zero rows.
func (d *Dataset) RegularGames(filter SeasonFilter, view View) ([]games.Game, error) {
	return d.selectGames(queryRegularGames, d.regular, filter, view)
}

// TourneyGames returns tournament games matching the filter, projected
// to the requested view. Unmatched seasons yield zero rows.
func (d *Dataset) TourneyGames(filter SeasonFilter, view View) ([]games.Game, error) {
	return d.selectGames(queryTourneyGames, d.tourney, filter, view)
}

// CompactColumns returns the basic column names as read from the
// compact results file.
func (d *Dataset) CompactColumns() []string {
	return append([]string(nil), d.compactHeaders...)
}

// DetailedColumns returns the extended column names as read from the
// detailed results file.
func (d *Dataset) DetailedColumns() []string {
	return append([]string(nil), d.detailedHeaders...)
}

func (d *Dataset) selectGames(query string, rows []games.Game, filter SeasonFilter, view View) ([]games.Game, error) {
	// Cannot happen via Open, which always loads the detailed files;
	// guarded for datasets constructed another way.
	if view == Detailed && len(d.detailedHeaders) == 0 {
		return nil, &SchemaError{Reason: "detailed schema not loaded"}
	}

	start := time.Now()
	out := make([]games.Game, 0)
	for _, g := range rows {
		if !filter.Matches(g.Season) {
			continue
		}
		if view == Compact {
			out = append(out, g.WithoutBox())
		} else {
			out = append(out, g.Clone())
		}
	}
	d.rec.RecordQuery(query, len(out), time.Since(start))
	return out, nil
}
