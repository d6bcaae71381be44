package gamestate

// Abilities is keyed by slot: ability0, ability1 and so on.
type Abilities map[string]Ability

type Ability struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	CanCast       bool   `json:"can_cast"`
	Passive       bool   `json:"passive"`
	AbilityActive bool   `json:"ability_active"`
	Cooldown      int    `json:"cooldown"`
	Ultimate      bool   `json:"ultimate"`
}

// Items is keyed by slot: slot0..slot8 for the inventory, stash0..stash5 for
// the stash, plus teleport0 and neutral0. Empty slots hold the name
// "empty".
type Items map[string]Item

type Item struct {
	Name      string `json:"name"`
	Purchaser int    `json:"purchaser"`
	CanCast   bool   `json:"can_cast"`
	Cooldown  int    `json:"cooldown"`
	Passive   bool   `json:"passive"`
	Charges   int    `json:"charges"`
}

// Buildings is keyed by the internal entity name, e.g.
// dota_goodguys_tower1_top.
type Buildings map[string]Building

type Building struct {
	Health    int `json:"health"`
	MaxHealth int `json:"max_health"`
}

// Wearables is keyed by slot (wearable0, ...) with cosmetic item ids as
// values.
type Wearables map[string]int
