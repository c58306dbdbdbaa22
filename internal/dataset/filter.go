package dataset

// SeasonFilter selects which seasons a games query returns. The zero
// value matches nothing; use AllSeasons for an unrestricted query.
type SeasonFilter struct {
	all   bool
	years map[int]bool
}

// AllSeasons matches every season in the table.
func AllSeasons() SeasonFilter {
	return SeasonFilter{all: true}
}

// Season matches a single season year.
func Season(year int) SeasonFilter {
	return Seasons(year)
}

// Seasons matches any of the given season years. Years with no rows
// simply contribute nothing.
func Seasons(years ...int) SeasonFilter {
	set := make(map[int]bool, len(years))
	for _, y := range years {
		set[y] = true
	}
	return SeasonFilter{years: set}
}

// All reports whether the filter is unrestricted.
func (f SeasonFilter) All() bool {
	return f.all
}

// Matches reports whether rows of the given season year pass the filter.
func (f SeasonFilter) Matches(year int) bool {
	if f.all {
		return true
	}
	return f.years[year]
}

// View selects which column subset a games query projects.
type View int

const (
	// Compact projects only the basic per-game columns; box scores are
	// stripped from the result.
	Compact View = iota
	// Detailed keeps the box-score statistics. Rows from the
	// compact-only era carry a nil box score.
	Detailed
)

func (v View) String() string {
	switch v {
	case Compact:
		return "compact"
	case Detailed:
		return "detailed"
	default:
		return "unknown"
	}
}
