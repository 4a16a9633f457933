package nsmbw

// CompletionFlags is the per-slot game progress bit set.
type CompletionFlags uint8

const (
	SaveEmpty CompletionFlags = 1 << iota
	FinalBossBeaten
	AllGoals
	AllStarCoins   // worlds 1-8
	AllStarCoinsW9 // world 9
	GameCompleted
	SuperGuideTriggered
)

func (f CompletionFlags) Has(flag CompletionFlags) bool { return f&flag == flag }
func (f *CompletionFlags) Set(flag CompletionFlags)     { *f |= flag }
func (f *CompletionFlags) Clear(flag CompletionFlags)   { *f &^= flag }

// StageFlags is the completion word stored for every [world][stage].
type StageFlags uint32

const (
	StarCoin1        StageFlags = 0x1
	StarCoin2        StageFlags = 0x2
	StarCoin3        StageFlags = 0x4
	GoalNormal       StageFlags = 0x10
	GoalSecret       StageFlags = 0x20
	SuperGuideNormal StageFlags = 0x80
	SuperGuideSecret StageFlags = 0x100
)

func (f StageFlags) Has(flag StageFlags) bool { return f&flag == flag }
func (f *StageFlags) Set(flag StageFlags)     { *f |= flag }
func (f *StageFlags) Clear(flag StageFlags)   { *f &^= flag }

// StarCoins counts the collected star coins of a stage.
func (f StageFlags) StarCoins() int {
	n := 0
	for _, c := range []StageFlags{StarCoin1, StarCoin2, StarCoin3} {
		if f.Has(c) {
			n++
		}
	}
	return n
}

func boolFromBits(v uint16, i int) bool {
	return (v>>i)&1 != 0
}

func bits(in []bool) uint16 {
	var v uint16
	for i, b := range in {
		if b {
			v |= 1 << i
		}
	}
	return v
}

// UnlockedWorlds unpacks the extra modes bitmask, index 0 being world 1.
func (h *Header) UnlockedWorlds() [WorldCount]bool {
	var out [WorldCount]bool
	for i := range out {
		out[i] = boolFromBits(h.ExtraModesUnlockedWorlds, i)
	}
	return out
}

// SetUnlockedWorlds packs worlds back into the bitmask. Bits above
// WorldCount are kept as they were.
func (h *Header) SetUnlockedWorlds(worlds [WorldCount]bool) {
	const mask = 1<<WorldCount - 1
	h.ExtraModesUnlockedWorlds = h.ExtraModesUnlockedWorlds&^mask | bits(worlds[:])
}
