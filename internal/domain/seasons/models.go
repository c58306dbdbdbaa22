package seasons

import (
	"time"

	"ncaa-data-service/internal/timeutil"
)

// Season is one row of the season metadata table: the season year, the
// "day zero" anchor date that day numbers count from, and the team
// regions assigned to the four bracket quadrants.
type Season struct {
	Year    int    `json:"year"`
	DayZero string `json:"dayZero"`
	RegionW string `json:"regionW"`
	RegionX string `json:"regionX"`
	RegionY string `json:"regionY"`
	RegionZ string `json:"regionZ"`
}

// DayZeroDate parses the season's day-zero anchor date.
func (s Season) DayZeroDate() (time.Time, error) {
	return timeutil.ParseDayZero(s.DayZero)
}
