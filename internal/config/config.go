// Package config holds the generation tables and runtime settings. Tables
// are loaded once at startup and treated as immutable; generators copy what
// they need at construction.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SeededRNG  SeededRNG  `yaml:"seeded_rng" json:"seeded_rng"`
	DataDir    string     `yaml:"data_dir" json:"data_dir"`
	Loot       Loot       `yaml:"loot" json:"loot"`
	Encounters Encounters `yaml:"encounters" json:"encounters"`
	Quests     Quests     `yaml:"quests" json:"quests"`
}

type SeededRNG struct {
	Enabled bool  `yaml:"enabled" json:"enabled"`
	Seed    int64 `yaml:"seed" json:"seed"`
}

// Loot configures the candidate pools for loot table generation.
type Loot struct {
	// CommonPool is eligible for every entity regardless of type.
	CommonPool []string `yaml:"common_pool" json:"common_pool"`
	// EntityPools is keyed by enemy type name as it appears in the
	// encounter pools.
	EntityPools map[string][]string `yaml:"entity_pools" json:"entity_pools"`
	// MidTier joins the candidates at level 5 and above.
	MidTier []string `yaml:"mid_tier" json:"mid_tier"`
	// HighTier joins the candidates at level 8 and above, on top of MidTier.
	HighTier []string `yaml:"high_tier" json:"high_tier"`
	// FallbackItem is the single-entry pool for unknown entity types.
	FallbackItem string `yaml:"fallback_item" json:"fallback_item"`
}

// Fallback returns the unknown-entity placeholder item.
func (l Loot) Fallback() string {
	if l.FallbackItem == "" {
		return "Unknown Item"
	}
	return l.FallbackItem
}

// Encounters configures the enemy name pools per location type.
type Encounters struct {
	// DefaultLocation is used for unknown location types.
	DefaultLocation string              `yaml:"default_location" json:"default_location"`
	Pools           map[string][]string `yaml:"pools" json:"pools"`
}

// Quests configures the per-archetype token vocabularies.
type Quests struct {
	KillTargets         []string `yaml:"kill_targets" json:"kill_targets"`
	CollectItems        []string `yaml:"collect_items" json:"collect_items"`
	DeliverItems        []string `yaml:"deliver_items" json:"deliver_items"`
	Destinations        []string `yaml:"destinations" json:"destinations"`
	EscortNPCs          []string `yaml:"escort_npcs" json:"escort_npcs"`
	InvestigateSubjects []string `yaml:"investigate_subjects" json:"investigate_subjects"`
}

// Default returns the built-in generation tables.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Loot: Loot{
			CommonPool: []string{"Gold Pouch", "Health Potion", "Torn Map"},
			EntityPools: map[string][]string{
				"Wolf":            {"Wolf Pelt", "Sharp Fang"},
				"Bandit":          {"Crude Dagger", "Worn Boots"},
				"Wild Boar":       {"Boar Tusk", "Tough Hide"},
				"Giant Spider":    {"Spider Silk", "Venom Sac"},
				"Goblin":          {"Goblin Ear", "Bent Copper Ring"},
				"Bear":            {"Bear Claw", "Thick Fur"},
				"Giant Bat":       {"Bat Wing", "Echo Stone"},
				"Troll":           {"Troll Hide", "Regenerating Moss"},
				"Slime":           {"Slime Residue", "Gel Core"},
				"Skeleton":        {"Bone Dust", "Rusty Sword"},
				"Ghost":           {"Ectoplasm", "Faded Locket"},
				"Zombie":          {"Tattered Cloth", "Grave Soil"},
				"Cultist":         {"Ritual Dagger", "Dark Amulet"},
				"Orc":             {"Orcish Axe", "Iron Tooth"},
				"Minotaur":        {"Minotaur Horn", "Heavy Chain"},
				"Corrupted Druid": {"Withered Branch", "Tainted Charm"},
				"Gargoyle":        {"Stone Shard", "Weathered Talon"},
			},
			MidTier:      []string{"Silver Ring", "Enchanted Scroll"},
			HighTier:     []string{"Ancient Relic", "Dragon Scale"},
			FallbackItem: "Unknown Item",
		},
		Encounters: Encounters{
			DefaultLocation: "wilderness",
			Pools: map[string][]string{
				"wilderness": {"Wolf", "Bandit", "Wild Boar", "Giant Spider", "Goblin"},
				"forest":     {"Wolf", "Bear", "Giant Spider", "Corrupted Druid"},
				"cave":       {"Goblin", "Troll", "Giant Bat", "Slime"},
				"ruins":      {"Skeleton", "Ghost", "Zombie", "Cultist", "Gargoyle"},
				"dungeon":    {"Skeleton", "Zombie", "Goblin", "Orc", "Minotaur"},
			},
		},
		Quests: Quests{
			KillTargets:         []string{"Bandits", "Goblin Raiders", "Wolf Pack", "Giant Rats", "Cultists"},
			CollectItems:        []string{"Herbs", "Iron Ore", "Ancient Coins", "Glowing Mushrooms"},
			DeliverItems:        []string{"Package", "Sealed Letter", "Medicine Chest", "Supply Crate"},
			Destinations:        []string{"Neighboring Village", "Old Monastery", "Trading Post", "Frontier Garrison"},
			EscortNPCs:          []string{"Merchant", "Pilgrim", "Scholar", "Cartographer"},
			InvestigateSubjects: []string{"Strange Lights", "Eerie Howling", "Missing Travelers", "Sudden Blight"},
		},
	}
}

// ApplyDefaults fills any table left empty by a partial config file.
func (c *Config) ApplyDefaults() {
	def := Default()

	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if len(c.Loot.CommonPool) == 0 {
		c.Loot.CommonPool = def.Loot.CommonPool
	}
	if len(c.Loot.EntityPools) == 0 {
		c.Loot.EntityPools = def.Loot.EntityPools
	}
	if len(c.Loot.MidTier) == 0 {
		c.Loot.MidTier = def.Loot.MidTier
	}
	if len(c.Loot.HighTier) == 0 {
		c.Loot.HighTier = def.Loot.HighTier
	}
	if c.Loot.FallbackItem == "" {
		c.Loot.FallbackItem = def.Loot.FallbackItem
	}
	if c.Encounters.DefaultLocation == "" {
		c.Encounters.DefaultLocation = def.Encounters.DefaultLocation
	}
	if len(c.Encounters.Pools) == 0 {
		c.Encounters.Pools = def.Encounters.Pools
	}
	if len(c.Quests.KillTargets) == 0 {
		c.Quests.KillTargets = def.Quests.KillTargets
	}
	if len(c.Quests.CollectItems) == 0 {
		c.Quests.CollectItems = def.Quests.CollectItems
	}
	if len(c.Quests.DeliverItems) == 0 {
		c.Quests.DeliverItems = def.Quests.DeliverItems
	}
	if len(c.Quests.Destinations) == 0 {
		c.Quests.Destinations = def.Quests.Destinations
	}
	if len(c.Quests.EscortNPCs) == 0 {
		c.Quests.EscortNPCs = def.Quests.EscortNPCs
	}
	if len(c.Quests.InvestigateSubjects) == 0 {
		c.Quests.InvestigateSubjects = def.Quests.InvestigateSubjects
	}
}

// Load reads a YAML config file and fills gaps from the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}
