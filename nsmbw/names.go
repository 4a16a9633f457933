package nsmbw

import (
	"fmt"
)

// StageName is the in-game name of a stage index. Indices the game does
// not use are named as such.
func StageName(i int) string {
	switch {
	case i >= 0 && i <= 8:
		return fmt.Sprintf("Stage %d", i+1)
	case i == 19:
		return "Coin Battle Stage"
	case i == 20:
		return "Ghost House"
	case i == 21 || i == 22:
		return fmt.Sprintf("Tower %d", i-20)
	case i == 23 || i == 24:
		return fmt.Sprintf("Castle %d", i-22)
	case i >= 25 && i <= 28:
		return fmt.Sprintf("Toad House %d", i-24)
	case i >= 32 && i <= 34:
		return fmt.Sprintf("Enemy Ambush %d", i-31)
	case i == 35:
		return "Cannon"
	case i == 37:
		return "Airship"
	case i == 38:
		return `"Rescue"`
	case i == 39:
		return "Title Screen"
	case i == 40:
		return "Peach's Castle"
	case i == 41:
		return "Staff Credits"
	}
	return fmt.Sprintf("(unused index %d)", i)
}

var completionNames = []struct {
	flag CompletionFlags
	name string
}{
	{SaveEmpty, "save empty"},
	{FinalBossBeaten, "final boss beaten"},
	{AllGoals, "all goals"},
	{AllStarCoins, "all star coins (W1-W8)"},
	{AllStarCoinsW9, "all star coins (W9)"},
	{GameCompleted, "game completed"},
	{SuperGuideTriggered, "super guide triggered"},
}

// Names lists the set flags in bit order.
func (f CompletionFlags) Names() []string {
	var out []string
	for _, c := range completionNames {
		if f.Has(c.flag) {
			out = append(out, c.name)
		}
	}
	return out
}
