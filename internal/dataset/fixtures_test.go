package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"ncaa-data-service/internal/config"
)

// A miniature but faithful copy of the real file set: compact rows span
// both eras (the 2003/2005 compact rows duplicate detailed rows and
// must be dropped by the merge), detailed rows carry full box scores.
var fixtureFiles = map[string]string{
	FileTeams: `Team_Id,Team_Name
1101,Abilene Chr
1102,Air Force
1103,Akron
1104,Alabama
`,
	FileSeasons: `Season,Dayzero,Regionw,Regionx,Regiony,Regionz
1985,10/29/1984,East,West,Midwest,Southeast
1995,10/31/1994,East,Midwest,Southeast,West
2003,10/28/2002,East,South,Midwest,West
2005,11/1/2004,Austin,Albuquerque,Chicago,Syracuse
2010,11/2/2009,East,South,Midwest,West
2011,11/1/2010,East,Southeast,Southwest,West
`,
	FileRegularCompact: `Season,Daynum,Wteam,Wscore,Lteam,Lscore,Wloc,Numot
1985,20,1101,63,1102,54,H,0
1985,25,1103,70,1104,61,A,0
1995,30,1102,80,1103,75,N,1
2003,10,1101,55,1104,50,H,0
2005,40,1101,77,1102,70,H,0
`,
	FileRegularDetail: `Season,Daynum,Wteam,Wscore,Lteam,Lscore,Wloc,Numot,Wfgm,Wfga,Wfgm3,Wfga3,Wftm,Wfta,Wor,Wdr,Wast,Wto,Wstl,Wblk,Wpf,Lfgm,Lfga,Lfgm3,Lfga3,Lftm,Lfta,Lor,Ldr,Last,Lto,Lstl,Lblk,Lpf
2003,10,1101,55,1104,50,H,0,20,45,5,15,10,12,8,20,12,10,5,3,15,18,50,4,18,10,14,9,18,10,12,4,2,17
2005,40,1101,77,1102,70,H,0,25,50,7,18,20,24,10,22,15,9,6,4,18,24,55,5,20,17,22,11,20,13,11,5,3,19
2010,15,1103,66,1101,60,N,0,22,48,6,16,16,20,9,21,14,8,7,5,16,21,52,5,19,13,18,10,19,12,10,6,4,18
2011,18,1104,59,1102,52,A,1,19,44,4,14,17,21,8,19,11,7,5,2,14,18,49,3,17,13,19,9,18,9,9,4,3,16
`,
	FileTourneyCompact: `Season,Daynum,Wteam,Wscore,Lteam,Lscore,Wloc,Numot
1985,136,1101,70,1102,65,N,0
1995,137,1103,68,1104,60,N,0
2005,136,1101,80,1103,75,N,0
`,
	FileTourneyDetail: `Season,Daynum,Wteam,Wscore,Lteam,Lscore,Wloc,Numot,Wfgm,Wfga,Wfgm3,Wfga3,Wftm,Wfta,Wor,Wdr,Wast,Wto,Wstl,Wblk,Wpf,Lfgm,Lfga,Lfgm3,Lfga3,Lftm,Lfta,Lor,Ldr,Last,Lto,Lstl,Lblk,Lpf
2005,136,1101,80,1103,75,N,0,28,55,8,20,16,20,11,23,17,8,7,4,17,26,58,6,22,17,21,12,21,14,10,6,3,20
2010,137,1102,71,1104,66,N,2,24,51,5,17,18,23,10,20,13,9,6,3,19,23,54,4,19,16,22,11,19,11,10,5,2,21
`,
	FileSeeds: `Season,Seed,Team
1985,W01,1101
1985,X02,1102
2010,W01,1103
2010,Y16a,1104
`,
	FileSlots: `Season,Slot,Strongseed,Weakseed
1985,R1W1,W01,W16
2010,R1W1,W01,W16
2010,W16,W16a,W16b
`,
}

// writeFixture lays the fixture file set out in a temp dir, applying
// any per-file content overrides.
func writeFixture(t *testing.T, overrides map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range fixtureFiles {
		if override, ok := overrides[name]; ok {
			content = override
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return dir
}

func openFixture(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Open(config.Config{DataDir: writeFixture(t, nil)}, nil, nil)
	if err != nil {
		t.Fatalf("open fixture dataset: %v", err)
	}
	return ds
}
