// Package encounter generates fully-specified enemies scaled to the
// character's level.
package encounter

import (
	"fmt"
	"strings"

	"emberdeep/internal/config"
	"emberdeep/internal/loot"
	"emberdeep/internal/rng"
)

// MinLevel and MaxLevel bound generated enemy levels.
const (
	MinLevel = 1
	MaxLevel = 10
)

// Enemy is a freshly generated opponent. AttackDamage and GoldReward are
// closed [min, max] intervals, not point values.
type Enemy struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Level            int      `json:"level"`
	MaxHP            int      `json:"max_hp"`
	CurrentHP        int      `json:"current_hp"`
	AttackDamage     [2]int   `json:"attack_damage"`
	Defense          int      `json:"defense"`
	ExperienceReward int      `json:"experience_reward"`
	GoldReward       [2]int   `json:"gold_reward"`
	LootTable        []string `json:"loot_table"`
}

// Generator produces enemies for a location type. Pools are copied at
// construction. Not safe for concurrent use unless src is.
type Generator struct {
	src             rng.Source
	pools           map[string][]string
	defaultLocation string
	loot            *loot.Generator
}

// NewGenerator copies the configured pools into a Generator bound to src
// and the given loot generator.
func NewGenerator(cfg config.Encounters, lootGen *loot.Generator, src rng.Source) *Generator {
	pools := make(map[string][]string, len(cfg.Pools))
	for location, pool := range cfg.Pools {
		names := make([]string, len(pool))
		copy(names, pool)
		pools[strings.ToLower(location)] = names
	}
	def := strings.ToLower(cfg.DefaultLocation)
	if def == "" {
		def = "wilderness"
	}
	return &Generator{
		src:             src,
		pools:           pools,
		defaultLocation: def,
		loot:            lootGen,
	}
}

// Generate builds an enemy for the given character level and location type.
// It never fails: unknown location types fall back to the default pool.
func (g *Generator) Generate(characterLevel int, locationType string) Enemy {
	pool := g.poolFor(locationType)
	enemyType := rng.Pick(g.src, pool)

	level := clamp(characterLevel+rng.Between(g.src, -2, 2), MinLevel, MaxLevel)

	// The raw HP formula is kept unfloored on purpose; at level >= 1 the
	// worst case is 8+2-3 = 7.
	maxHP := 8 + 2*level + rng.Between(g.src, -3, 3)

	return Enemy{
		Name:             enemyType,
		Description:      fmt.Sprintf("A level %d %s ready for battle.", level, strings.ToLower(enemyType)),
		Level:            level,
		MaxHP:            maxHP,
		CurrentHP:        maxHP,
		AttackDamage:     [2]int{1 + level/3, 4 + level},
		Defense:          level / 2,
		ExperienceReward: 20 + 10*level,
		GoldReward:       [2]int{level, 5 + 3*level},
		LootTable:        g.loot.Table(enemyType, level),
	}
}

func (g *Generator) poolFor(locationType string) []string {
	key := strings.ToLower(strings.TrimSpace(locationType))
	if pool, ok := g.pools[key]; ok && len(pool) > 0 {
		return pool
	}
	return g.pools[g.defaultLocation]
}

// Locations lists the configured location types.
func (g *Generator) Locations() []string {
	out := make([]string, 0, len(g.pools))
	for location := range g.pools {
		out = append(out, location)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
