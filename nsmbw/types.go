package nsmbw

// Header is the part of the file shared by all slots.
type Header struct {
	Region                   Region            `yaml:"region"`
	LastSelectedIndex        uint8             `yaml:"last_selected_index"` // 0-2
	FreeModePlayCount        StageGrid[uint16] `yaml:"free_mode_play_count"`
	CoinBattlePlayCount      StageGrid[uint16] `yaml:"coin_battle_play_count"`
	ExtraModesUnlockedWorlds uint16            `yaml:"extra_modes_unlocked_worlds"` // bit n = world n+1
}

type Player struct {
	Continues  uint8           `yaml:"continues"`
	Coins      uint8           `yaml:"coins"`
	Lives      uint8           `yaml:"lives"`
	SpawnFlags uint8           `yaml:"spawn_flags"`
	Character  PlayerCharacter `yaml:"character"`
	Powerup    PlayerPowerup   `yaml:"powerup"`
}

// AmbushEnemy is the map state of one of the enemies that roam a world map
// and start a stage when they touch the player.
type AmbushEnemy struct {
	RevivalCount  uint8          `yaml:"revival_count"`
	Subworld      uint8          `yaml:"subworld"`
	PositionIndex uint8          `yaml:"position_index"`
	WalkDirection EnemyDirection `yaml:"walk_direction"`
}

type Slot struct {
	CompletionFlags        CompletionFlags               `yaml:"completion_flags"`
	CurrentWorld           uint8                         `yaml:"current_world"`
	CurrentSubworld        uint8                         `yaml:"current_subworld"`
	CurrentPathNode        uint8                         `yaml:"current_path_node"`
	W5VineReshuffleCounter uint8                         `yaml:"w5_vine_reshuffle_counter"`
	W3SwitchOn             bool                          `yaml:"w3_switch_on"`
	ItemStock              [PowerupCount]uint8           `yaml:"item_stock"`
	StartingMushroomHouse  [WorldCount]MushroomHouseKind `yaml:"starting_mushroom_house"`
	Players                [PlayerCount]Player           `yaml:"players"`
	WorldUnlocked          [WorldCount]bool              `yaml:"world_unlocked"`
	AmbushEnemies          AmbushGrid[AmbushEnemy]       `yaml:"ambush_enemies"`
	StaffCreditsHighScore  uint16                        `yaml:"staff_credits_high_score"`
	Score                  uint32                        `yaml:"score"` // up to MaxScore in game
	StageCompletion        StageGrid[StageFlags]         `yaml:"stage_completion"`
	HintMovieBought        [HintMovieCount]bool          `yaml:"hint_movie_bought"`
	ToadRescueStage        [WorldCount]uint8             `yaml:"toad_rescue_stage"`
	DeathCount             StageGrid[uint8]              `yaml:"death_count"`
	DeathCountW3L4Switch   uint8                         `yaml:"death_count_w3_l4_switch"`
}

// SaveFile is a whole decoded save: slots 0-2 are the save slots, 3-5
// their quick save copies.
type SaveFile struct {
	Header Header          `yaml:"header"`
	Slots  [SlotCount]Slot `yaml:"slots"`
}

type InFile interface {
	Read(b []byte) (int, error)
}

type OutFile interface {
	Write(b []byte) (int, error)
}
