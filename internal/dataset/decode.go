package dataset

import (
	"strconv"
	"strings"

	"ncaa-data-service/internal/csvfile"
	"ncaa-data-service/internal/domain/brackets"
	"ncaa-data-service/internal/domain/games"
	"ncaa-data-service/internal/domain/seasons"
	"ncaa-data-service/internal/domain/teams"
)

// rowDecoder gives named-column access to the rows of one table,
// attributing cell errors to file, line, and column.
type rowDecoder struct {
	file string
	cols map[string]int
}

func newRowDecoder(file string, table csvfile.Table, required ...string) (rowDecoder, error) {
	cols := table.Index()
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return rowDecoder{}, &SchemaError{File: file, Reason: "missing column " + name}
		}
	}
	return rowDecoder{file: file, cols: cols}, nil
}

func (d rowDecoder) text(row []string, name string) string {
	return strings.TrimSpace(row[d.cols[name]])
}

func (d rowDecoder) integer(row []string, line int, name string) (int, error) {
	raw := strings.TrimSpace(row[d.cols[name]])
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &csvfile.ParseError{File: d.file, Line: line, Column: name, Err: err}
	}
	return v, nil
}

func (d rowDecoder) teamLine(row []string, line int, prefix string) (games.TeamLine, error) {
	vals := make([]int, len(boxSuffixes))
	for i, suffix := range boxSuffixes {
		v, err := d.integer(row, line, prefix+suffix)
		if err != nil {
			return games.TeamLine{}, err
		}
		vals[i] = v
	}
	return games.TeamLine{
		FGM: vals[0], FGA: vals[1], FGM3: vals[2], FGA3: vals[3],
		FTM: vals[4], FTA: vals[5], OR: vals[6], DR: vals[7],
		Ast: vals[8], TO: vals[9], Stl: vals[10], Blk: vals[11], PF: vals[12],
	}, nil
}

// lineOf converts a data-row index to its one-based file line (the
// header occupies line 1).
func lineOf(rowIndex int) int {
	return rowIndex + 2
}

func decodeGames(table csvfile.Table, file string, detailed bool) ([]games.Game, error) {
	required := append([]string(nil), compactColumns...)
	if detailed {
		for _, prefix := range []string{"W", "L"} {
			for _, suffix := range boxSuffixes {
				required = append(required, prefix+suffix)
			}
		}
	}
	dec, err := newRowDecoder(file, table, required...)
	if err != nil {
		return nil, err
	}

	out := make([]games.Game, 0, len(table.Rows))
	for i, row := range table.Rows {
		line := lineOf(i)

		var g games.Game
		if g.Season, err = dec.integer(row, line, colSeason); err != nil {
			return nil, err
		}
		if g.DayNum, err = dec.integer(row, line, colDayNum); err != nil {
			return nil, err
		}
		if g.WTeamID, err = dec.integer(row, line, colWTeam); err != nil {
			return nil, err
		}
		if g.WScore, err = dec.integer(row, line, colWScore); err != nil {
			return nil, err
		}
		if g.LTeamID, err = dec.integer(row, line, colLTeam); err != nil {
			return nil, err
		}
		if g.LScore, err = dec.integer(row, line, colLScore); err != nil {
			return nil, err
		}
		g.WLoc = dec.text(row, colWLoc)
		if g.NumOT, err = dec.integer(row, line, colNumOT); err != nil {
			return nil, err
		}

		if detailed {
			winner, err := dec.teamLine(row, line, "W")
			if err != nil {
				return nil, err
			}
			loser, err := dec.teamLine(row, line, "L")
			if err != nil {
				return nil, err
			}
			g.Box = &games.BoxScore{Winner: winner, Loser: loser}
		}

		out = append(out, g)
	}
	return out, nil
}

func decodeTeams(table csvfile.Table, file string) (map[int]string, []teams.Team, error) {
	dec, err := newRowDecoder(file, table, colTeamID, colTeamName)
	if err != nil {
		return nil, nil, err
	}

	directory := make(map[int]string, len(table.Rows))
	list := make([]teams.Team, 0, len(table.Rows))
	for i, row := range table.Rows {
		id, err := dec.integer(row, lineOf(i), colTeamID)
		if err != nil {
			return nil, nil, err
		}
		name := dec.text(row, colTeamName)
		directory[id] = name
		list = append(list, teams.Team{ID: id, Name: name})
	}
	return directory, list, nil
}

func decodeSeasons(table csvfile.Table, file string) ([]seasons.Season, error) {
	dec, err := newRowDecoder(file, table, colSeason, colDayZero, colRegionW, colRegionX, colRegionY, colRegionZ)
	if err != nil {
		return nil, err
	}

	out := make([]seasons.Season, 0, len(table.Rows))
	for i, row := range table.Rows {
		year, err := dec.integer(row, lineOf(i), colSeason)
		if err != nil {
			return nil, err
		}
		out = append(out, seasons.Season{
			Year:    year,
			DayZero: dec.text(row, colDayZero),
			RegionW: dec.text(row, colRegionW),
			RegionX: dec.text(row, colRegionX),
			RegionY: dec.text(row, colRegionY),
			RegionZ: dec.text(row, colRegionZ),
		})
	}
	return out, nil
}

func decodeSeeds(table csvfile.Table, file string) ([]brackets.Seed, error) {
	dec, err := newRowDecoder(file, table, colSeason, colSeed, colTeam)
	if err != nil {
		return nil, err
	}

	out := make([]brackets.Seed, 0, len(table.Rows))
	for i, row := range table.Rows {
		line := lineOf(i)
		season, err := dec.integer(row, line, colSeason)
		if err != nil {
			return nil, err
		}
		team, err := dec.integer(row, line, colTeam)
		if err != nil {
			return nil, err
		}
		out = append(out, brackets.Seed{
			Season: season,
			Label:  dec.text(row, colSeed),
			TeamID: team,
		})
	}
	return out, nil
}

func decodeSlots(table csvfile.Table, file string) ([]brackets.Slot, error) {
	dec, err := newRowDecoder(file, table, colSeason, colSlot, colStrongSeed, colWeakSeed)
	if err != nil {
		return nil, err
	}

	out := make([]brackets.Slot, 0, len(table.Rows))
	for i, row := range table.Rows {
		season, err := dec.integer(row, lineOf(i), colSeason)
		if err != nil {
			return nil, err
		}
		out = append(out, brackets.Slot{
			Season:     season,
			Name:       dec.text(row, colSlot),
			StrongSeed: dec.text(row, colStrongSeed),
			WeakSeed:   dec.text(row, colWeakSeed),
		})
	}
	return out, nil
}
