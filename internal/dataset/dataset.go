// Package dataset loads the march-ml-mania CSV files into immutable
// in-memory tables and answers season-scoped queries over them.
package dataset

import (
	"fmt"
	"log/slog"
	"time"

	"ncaa-data-service/internal/config"
	"ncaa-data-service/internal/csvfile"
	"ncaa-data-service/internal/domain/brackets"
	"ncaa-data-service/internal/domain/games"
	"ncaa-data-service/internal/domain/seasons"
	"ncaa-data-service/internal/domain/teams"
	"ncaa-data-service/internal/logging"
	"ncaa-data-service/internal/metrics"
)

// Dataset is a read-only snapshot of the march-ml-mania data. All
// tables are loaded eagerly by Open; afterwards the value is immutable
// and safe for concurrent readers.
type Dataset struct {
	logger *slog.Logger
	rec    *metrics.Recorder

	teams    map[int]string
	teamList []teams.Team
	seasons  []seasons.Season
	seeds    []brackets.Seed
	slots    []brackets.Slot
	regular  []games.Game
	tourney  []games.Game

	compactHeaders  []string
	detailedHeaders []string
}

// Open reads the eight source files from cfg.DataDir and builds the
// merged result tables. Construction fails fast on a missing file, a
// malformed file, or a schema violation; there is no partial success.
// Both logger and rec may be nil.
func Open(cfg config.Config, logger *slog.Logger, rec *metrics.Recorder) (*Dataset, error) {
	dir := cfg.DataDir
	if dir == "" {
		dir = DefaultDataDir
	}

	d := &Dataset{logger: logger, rec: rec}

	regularCompact, err := d.readTable(dir, FileRegularCompact)
	if err != nil {
		return nil, err
	}
	tourneyCompact, err := d.readTable(dir, FileTourneyCompact)
	if err != nil {
		return nil, err
	}
	regularDetail, err := d.readTable(dir, FileRegularDetail)
	if err != nil {
		return nil, err
	}
	tourneyDetail, err := d.readTable(dir, FileTourneyDetail)
	if err != nil {
		return nil, err
	}

	// The merge is only well-defined when the detailed schema extends
	// the compact one in place: same columns, same relative order, with
	// box-score columns appended.
	if err := validateHeaderPrefix(regularCompact.Header, regularDetail.Header, FileRegularDetail); err != nil {
		return nil, err
	}
	if err := validateHeaderPrefix(tourneyCompact.Header, tourneyDetail.Header, FileTourneyDetail); err != nil {
		return nil, err
	}

	d.compactHeaders = append([]string(nil), regularCompact.Header...)
	d.detailedHeaders = append([]string(nil), regularDetail.Header...)

	d.regular, err = mergeResults(regularCompact, FileRegularCompact, regularDetail, FileRegularDetail)
	if err != nil {
		return nil, err
	}
	d.tourney, err = mergeResults(tourneyCompact, FileTourneyCompact, tourneyDetail, FileTourneyDetail)
	if err != nil {
		return nil, err
	}

	teamTable, err := d.readTable(dir, FileTeams)
	if err != nil {
		return nil, err
	}
	d.teams, d.teamList, err = decodeTeams(teamTable, FileTeams)
	if err != nil {
		return nil, err
	}

	seasonTable, err := d.readTable(dir, FileSeasons)
	if err != nil {
		return nil, err
	}
	d.seasons, err = decodeSeasons(seasonTable, FileSeasons)
	if err != nil {
		return nil, err
	}

	seedTable, err := d.readTable(dir, FileSeeds)
	if err != nil {
		return nil, err
	}
	d.seeds, err = decodeSeeds(seedTable, FileSeeds)
	if err != nil {
		return nil, err
	}

	slotTable, err := d.readTable(dir, FileSlots)
	if err != nil {
		return nil, err
	}
	d.slots, err = decodeSlots(slotTable, FileSlots)
	if err != nil {
		return nil, err
	}

	logging.Info(d.logger, "dataset loaded",
		logging.FieldDataDir, dir,
		"teams", len(d.teams),
		"regular_games", len(d.regular),
		"tourney_games", len(d.tourney),
	)
	return d, nil
}

// readTable loads one named file from dir, recording telemetry for the
// read regardless of outcome.
func (d *Dataset) readTable(dir, name string) (csvfile.Table, error) {
	start := time.Now()
	table, err := csvfile.Read(FilePath(dir, name))
	d.rec.RecordFileLoad(name, len(table.Rows), time.Since(start), err)
	if err != nil {
		logging.Error(d.logger, "load data file", err, logging.FieldFile, name)
		return csvfile.Table{}, err
	}

	logging.Info(d.logger, "loaded data file",
		logging.FieldFile, name,
		logging.FieldRows, len(table.Rows),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return table, nil
}

// mergeResults stacks the compact-era rows (seasons before
// DetailedSince) on top of all detailed rows. Compact rows from the
// detailed era are duplicates and are dropped.
func mergeResults(compact csvfile.Table, compactFile string, detail csvfile.Table, detailFile string) ([]games.Game, error) {
	compactGames, err := decodeGames(compact, compactFile, false)
	if err != nil {
		return nil, err
	}
	detailGames, err := decodeGames(detail, detailFile, true)
	if err != nil {
		return nil, err
	}

	merged := make([]games.Game, 0, len(compactGames)+len(detailGames))
	for _, g := range compactGames {
		if g.Season < DetailedSince {
			merged = append(merged, g)
		}
	}
	merged = append(merged, detailGames...)
	return merged, nil
}

// validateHeaderPrefix enforces the merge invariant: the detailed
// header must begin with exactly the compact header.
func validateHeaderPrefix(compact, detailed []string, detailFile string) error {
	if len(detailed) < len(compact) {
		return &SchemaError{
			File:   detailFile,
			Reason: "detailed header is narrower than the compact header",
		}
	}
	for i, col := range compact {
		if detailed[i] != col {
			return &SchemaError{
				File:   detailFile,
				Reason: fmt.Sprintf("detailed header does not extend the compact header: position %d is %s, want %s", i, detailed[i], col),
			}
		}
	}
	return nil
}
