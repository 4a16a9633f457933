package nsmbw

import (
	"fmt"
)

func (s *Slot) fields(f fieldVisitor) {
	f.u8(sCompletion, (*uint8)(&s.CompletionFlags))
	f.u8(sWorld, &s.CurrentWorld)
	f.u8(sSubworld, &s.CurrentSubworld)
	f.u8(sPathNode, &s.CurrentPathNode)
	f.u8(sW5VineCounter, &s.W5VineReshuffleCounter)
	f.flag(sW3Switch, &s.W3SwitchOn)
	row(s.ItemStock[:], sItemStock, 1, f.u8)
	row(s.StartingMushroomHouse[:], sMushroomHouse, 1, func(off int, k *MushroomHouseKind) { f.enum(off, k) })

	// each player attribute is its own array of PlayerCount bytes
	row(s.Players[:], sContinues, 1, func(off int, p *Player) { f.u8(off, &p.Continues) })
	row(s.Players[:], sCoins, 1, func(off int, p *Player) { f.u8(off, &p.Coins) })
	row(s.Players[:], sLives, 1, func(off int, p *Player) { f.u8(off, &p.Lives) })
	row(s.Players[:], sSpawnFlags, 1, func(off int, p *Player) { f.u8(off, &p.SpawnFlags) })
	row(s.Players[:], sCharacter, 1, func(off int, p *Player) { f.enum(off, &p.Character) })
	row(s.Players[:], sPowerup, 1, func(off int, p *Player) { f.enum(off, &p.Powerup) })

	row(s.WorldUnlocked[:], sWorldUnlocked, 1, f.flag)

	// likewise for the ambush enemies, one [world][enemy] table per attribute
	s.AmbushEnemies.cells(sEnemyRevival, 1, func(off int, e *AmbushEnemy) { f.u8(off, &e.RevivalCount) })
	s.AmbushEnemies.cells(sEnemySubworld, 1, func(off int, e *AmbushEnemy) { f.u8(off, &e.Subworld) })
	s.AmbushEnemies.cells(sEnemyPosition, 1, func(off int, e *AmbushEnemy) { f.u8(off, &e.PositionIndex) })
	s.AmbushEnemies.cells(sEnemyDirection, 1, func(off int, e *AmbushEnemy) { f.enum(off, &e.WalkDirection) })

	f.u16(sCreditsHighScore, &s.StaffCreditsHighScore)
	f.u32(sScore, &s.Score)
	s.StageCompletion.cells(sStageCompletion, 4, func(off int, v *StageFlags) { f.u32(off, (*uint32)(v)) })
	row(s.HintMovieBought[:], sHintMovies, 1, f.flag)
	row(s.ToadRescueStage[:], sToadRescue, 1, f.u8)
	s.DeathCount.cells(sDeathCount, 1, f.u8)
	f.u8(sDeathCountW3L4, &s.DeathCountW3L4Switch)
}

func slotName(i int) string {
	return fmt.Sprintf("slot %d", i)
}

// DecodeSlot reads slot index (0-5) out of a whole save file buffer.
func DecodeSlot(b []byte, index int) (Slot, error) {
	if index < 0 || index >= SlotCount {
		return Slot{}, fmt.Errorf("slot index %d out of range [0, %d)", index, SlotCount)
	}
	start := slotOffset(index)
	if len(b) < start+SlotSize {
		return Slot{}, fmt.Errorf("%w: %s needs bytes up to %#x, got %#x", ErrTruncated, slotName(index), start+SlotSize, len(b))
	}
	var s Slot
	s.fields(fieldReader{buf: b[start : start+SlotSize]})
	return s, nil
}

// Encode returns the SlotSize bytes of s, checksum included.
func (s Slot) Encode() []byte {
	buf := make([]byte, SlotSize)
	buf[sVersion] = SlotVersion
	s.fields(fieldWriter{buf: buf})
	sealSlot(buf)
	return buf
}

// BlankSlot is an empty slot with the game's default party order.
func BlankSlot() Slot {
	s := Slot{}
	for i, c := range []PlayerCharacter{Mario, Luigi, YellowToad, BlueToad} {
		s.Players[i].Character = c
	}
	return s
}
