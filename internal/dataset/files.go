package dataset

import "path/filepath"

// DefaultDataDir is the conventional location of the march-ml-mania
// CSV drop, relative to the working directory.
const DefaultDataDir = "march-ml-mania-dataset"

// DetailedSince is the first season covered by the detailed results
// files. Compact rows from this season on are duplicates of detailed
// rows and are dropped during the merge.
const DetailedSince = 2003

// Fixed names of the source files inside the data directory.
const (
	FileTeams          = "Teams.csv"
	FileSeasons        = "Seasons.csv"
	FileRegularCompact = "RegularSeasonCompactResults.csv"
	FileRegularDetail  = "RegularSeasonDetailedResults.csv"
	FileTourneyCompact = "TourneyCompactResults.csv"
	FileTourneyDetail  = "TourneyDetailedResults.csv"
	FileSeeds          = "TourneySeeds.csv"
	FileSlots          = "TourneySlots.csv"
)

// Column names shared by the compact and detailed results schemas.
const (
	colSeason = "Season"
	colDayNum = "Daynum"
	colWTeam  = "Wteam"
	colWScore = "Wscore"
	colLTeam  = "Lteam"
	colLScore = "Lscore"
	colWLoc   = "Wloc"
	colNumOT  = "Numot"
)

// Column names of the remaining source files.
const (
	colTeamID     = "Team_Id"
	colTeamName   = "Team_Name"
	colDayZero    = "Dayzero"
	colRegionW    = "Regionw"
	colRegionX    = "Regionx"
	colRegionY    = "Regiony"
	colRegionZ    = "Regionz"
	colSeed       = "Seed"
	colTeam       = "Team"
	colSlot       = "Slot"
	colStrongSeed = "Strongseed"
	colWeakSeed   = "Weakseed"
)

var compactColumns = []string{
	colSeason, colDayNum, colWTeam, colWScore, colLTeam, colLScore, colWLoc, colNumOT,
}

// Per-team box-score column suffixes, in detailed-schema order. The
// full column name is the winner/loser prefix plus the suffix ("Wfgm").
var boxSuffixes = []string{
	"fgm", "fga", "fgm3", "fga3", "ftm", "fta", "or", "dr", "ast", "to", "stl", "blk", "pf",
}

// FilePath builds the path of one named source file inside dir.
func FilePath(dir, name string) string {
	return filepath.Join(dir, name)
}
