package nsmbw

import (
	"fmt"
)

// Every enumerated byte in the file decodes leniently: a discriminant the
// game never writes maps to the type's default variant instead of failing.

// discriminated is implemented by every enum stored as a single byte.
type discriminated interface {
	discriminant() byte
	setDiscriminant(b byte)
}

type Region uint8

const (
	NTSC Region = iota // default
	PAL
	JPN
	KOR
	CHN
	TW
)

var (
	regionTags         = [...]byte{'E', 'P', 'J', 'K', 'C', 'W'}
	regionNames        = []string{"NTSC", "PAL", "JPN", "KOR", "CHN", "TW"}
	regionDisplayNames = [...]string{"North America", "Europe/Australia", "Japan", "Korea", "China", "Taiwan"}
)

// Tag is the ASCII letter following "SMN" in the file.
func (r Region) Tag() byte {
	if int(r) >= len(regionTags) {
		return regionTags[NTSC]
	}
	return regionTags[r]
}

// RegionFromTag maps a tag letter to its region, NTSC if unknown.
func RegionFromTag(tag byte) Region {
	switch tag {
	case 'E':
		return NTSC
	case 'P':
		return PAL
	case 'J':
		return JPN
	case 'K':
		return KOR
	case 'C':
		return CHN
	case 'W':
		return TW
	}
	return NTSC
}

func (r Region) DisplayName() string {
	if int(r) >= len(regionDisplayNames) {
		return regionDisplayNames[NTSC]
	}
	return regionDisplayNames[r]
}

func (r Region) discriminant() byte      { return r.Tag() }
func (r *Region) setDiscriminant(b byte) { *r = RegionFromTag(b) }

func (r Region) String() string               { return enumName(r, regionNames) }
func (r Region) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
func (r *Region) UnmarshalText(text []byte) error {
	// a bare tag letter is accepted too
	if len(text) == 1 {
		for i, tag := range regionTags {
			if text[0] == tag {
				*r = Region(i)
				return nil
			}
		}
	}
	return parseEnum(r, text, regionNames, "region")
}

type PlayerCharacter uint8

const (
	Mario PlayerCharacter = iota // default
	Luigi
	BlueToad
	YellowToad
)

var characterNames = []string{"Mario", "Luigi", "BlueToad", "YellowToad"}

func (c PlayerCharacter) discriminant() byte {
	if int(c) >= len(characterNames) {
		return byte(Mario)
	}
	return byte(c)
}

func (c *PlayerCharacter) setDiscriminant(b byte) {
	switch PlayerCharacter(b) {
	case Mario, Luigi, BlueToad, YellowToad:
		*c = PlayerCharacter(b)
	default:
		*c = Mario
	}
}

func (c PlayerCharacter) String() string               { return enumName(c, characterNames) }
func (c PlayerCharacter) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (c *PlayerCharacter) UnmarshalText(text []byte) error {
	return parseEnum(c, text, characterNames, "player character")
}

type PlayerPowerup uint8

const (
	PowerupNone PlayerPowerup = iota // default
	PowerupMushroom
	PowerupFireFlower
	PowerupMiniMushroom
	PowerupPropellerMushroom
	PowerupPenguinSuit
	PowerupIceFlower
)

var powerupNames = []string{"None", "Mushroom", "FireFlower", "MiniMushroom", "PropellerMushroom", "PenguinSuit", "IceFlower"}

func (p PlayerPowerup) discriminant() byte {
	if int(p) >= len(powerupNames) {
		return byte(PowerupNone)
	}
	return byte(p)
}

func (p *PlayerPowerup) setDiscriminant(b byte) {
	switch PlayerPowerup(b) {
	case PowerupNone, PowerupMushroom, PowerupFireFlower, PowerupMiniMushroom,
		PowerupPropellerMushroom, PowerupPenguinSuit, PowerupIceFlower:
		*p = PlayerPowerup(b)
	default:
		*p = PowerupNone
	}
}

func (p PlayerPowerup) String() string               { return enumName(p, powerupNames) }
func (p PlayerPowerup) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *PlayerPowerup) UnmarshalText(text []byte) error {
	return parseEnum(p, text, powerupNames, "powerup")
}

// MushroomHouseKind is the toad house a world starts with.
type MushroomHouseKind uint8

const (
	HouseNone MushroomHouseKind = iota // default
	HouseStar
	HouseItem
	HouseOneUp
	HouseStarRescue
	HouseItemRescue
	HouseOneUpRescue
)

var houseNames = []string{"None", "Star", "Item", "OneUp", "StarRescue", "ItemRescue", "OneUpRescue"}

func (k MushroomHouseKind) discriminant() byte {
	if int(k) >= len(houseNames) {
		return byte(HouseNone)
	}
	return byte(k)
}

func (k *MushroomHouseKind) setDiscriminant(b byte) {
	switch MushroomHouseKind(b) {
	case HouseNone, HouseStar, HouseItem, HouseOneUp, HouseStarRescue, HouseItemRescue, HouseOneUpRescue:
		*k = MushroomHouseKind(b)
	default:
		*k = HouseNone
	}
}

func (k MushroomHouseKind) String() string               { return enumName(k, houseNames) }
func (k MushroomHouseKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (k *MushroomHouseKind) UnmarshalText(text []byte) error {
	return parseEnum(k, text, houseNames, "mushroom house kind")
}

// EnemyDirection is the way an ambush enemy walks along the world map path.
type EnemyDirection uint8

const (
	ToNextNode EnemyDirection = iota // default
	ToPreviousNode
	FirstTimeValue // set before the enemy has moved for the first time
)

var directionNames = []string{"ToNextNode", "ToPreviousNode", "FirstTimeValue"}

func (d EnemyDirection) discriminant() byte {
	if int(d) >= len(directionNames) {
		return byte(ToNextNode)
	}
	return byte(d)
}

func (d *EnemyDirection) setDiscriminant(b byte) {
	switch EnemyDirection(b) {
	case ToNextNode, ToPreviousNode, FirstTimeValue:
		*d = EnemyDirection(b)
	default:
		*d = ToNextNode
	}
}

func (d EnemyDirection) String() string               { return enumName(d, directionNames) }
func (d EnemyDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
func (d *EnemyDirection) UnmarshalText(text []byte) error {
	return parseEnum(d, text, directionNames, "enemy direction")
}

func enumName[E ~uint8](v E, names []string) string {
	if int(v) >= len(names) {
		return fmt.Sprintf("%d", uint8(v))
	}
	return names[v]
}

// parseEnum is strict: text comes from a person, not from the game.
func parseEnum[E ~uint8](v *E, text []byte, names []string, kind string) error {
	for i, name := range names {
		if string(text) == name {
			*v = E(i)
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, text)
}
