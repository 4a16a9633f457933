package nsmbw

const (
	WorldCount             = 10
	PlayableWorldCount     = 9 // the tenth world entry is never used by the game
	StageCount             = 42
	PlayerCount            = 4
	PowerupCount           = 7
	AmbushEnemyCount       = 4
	HintMovieCount         = 70 // reserved entries, only 64 movies exist
	PlayableHintMovieCount = 64
	SlotCount              = 6
	SaveSlotCount          = 3 // slots 3-5 are the quick save copies

	PowerupStockMax = 99
	PlayerLifeMax   = 99
	MaxScore        = 99999950

	HeaderSize = 0x6A0
	SlotSize   = 0x980
	FileSize   = HeaderSize + SlotCount*SlotSize

	HeaderVersion = 0x0E
	SlotVersion   = 0x0E
)

const magic = "SMN"

// Header offsets, from the start of the file.
const (
	hRegion          = 0x3
	hVersion         = 0x4
	hLastSelected    = 0x6
	hFreeModePlays   = 0x8
	hCoinBattlePlays = hFreeModePlays + WorldCount*StageCount*2
	hUnlockedWorlds  = 0x698
	hChecksumStart   = 0x4 // the checksum skips the magic and region tag
	hChecksum        = HeaderSize - 4
)

// Slot offsets, from the start of each slot record.
const (
	sVersion          = 0x0
	sCompletion       = 0x2
	sWorld            = 0x3
	sSubworld         = 0x4
	sPathNode         = 0x5
	sW5VineCounter    = 0x6
	sW3Switch         = 0x7
	sItemStock        = 0x9
	sMushroomHouse    = 0x10
	sContinues        = 0x1A
	sCoins            = 0x1E
	sLives            = 0x22
	sSpawnFlags       = 0x26
	sCharacter        = 0x2A
	sPowerup          = 0x2E
	sWorldUnlocked    = 0x32
	sEnemyRevival     = 0x3C
	sCreditsHighScore = 0x66
	sScore            = 0x68
	sStageCompletion  = 0x6C
	sHintMovies       = 0x6FC
	sToadRescue       = 0x742
	sEnemySubworld    = 0x74C
	sEnemyPosition    = 0x774
	sEnemyDirection   = 0x79C
	sDeathCount       = 0x7C4
	sDeathCountW3L4   = 0x968
	sChecksum         = SlotSize - 4
)

// slotOffset returns where slot i starts in the file.
func slotOffset(i int) int {
	return HeaderSize + i*SlotSize
}

// cell is the offset of element [i][j] in a row-major table of width-byte
// cells with inner columns per row, starting at base. Every table in the
// file is addressed through here.
func cell(base, i, j, inner, width int) int {
	return base + (i*inner+j)*width
}

// StageGrid holds one value per [world][stage].
type StageGrid[T any] [WorldCount][StageCount]T

// AmbushGrid holds one value per [world][ambush enemy].
type AmbushGrid[T any] [WorldCount][AmbushEnemyCount]T

func (g *StageGrid[T]) cells(base, width int, fn func(off int, v *T)) {
	for w := range g {
		for s := range g[w] {
			fn(cell(base, w, s, StageCount, width), &g[w][s])
		}
	}
}

func (g *AmbushGrid[T]) cells(base, width int, fn func(off int, v *T)) {
	for w := range g {
		for e := range g[w] {
			fn(cell(base, w, e, AmbushEnemyCount, width), &g[w][e])
		}
	}
}

// row visits a one-dimensional array stored as consecutive width-byte cells.
func row[T any](s []T, base, width int, fn func(off int, v *T)) {
	for i := range s {
		fn(cell(base, 0, i, 0, width), &s[i])
	}
}
