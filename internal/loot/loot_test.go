package loot

import (
	"testing"

	"emberdeep/internal/config"
	"emberdeep/internal/rng"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Loot {
	return config.Loot{
		CommonPool: []string{"Gold Pouch", "Health Potion", "Torn Map"},
		EntityPools: map[string][]string{
			"Wolf":     {"Wolf Pelt", "Sharp Fang"},
			"Skeleton": {"Bone Dust", "Rusty Sword"},
		},
		MidTier:      []string{"Silver Ring", "Enchanted Scroll"},
		HighTier:     []string{"Ancient Relic", "Dragon Scale"},
		FallbackItem: "Unknown Item",
	}
}

func TestTable_SizeAndDistinctness(t *testing.T) {
	g := NewGenerator(testConfig(), rng.New(42))

	for i := 0; i < 500; i++ {
		table := g.Table("Wolf", 1)
		assert.GreaterOrEqual(t, len(table), 2)
		assert.LessOrEqual(t, len(table), 4)

		seen := map[string]bool{}
		for _, item := range table {
			assert.False(t, seen[item], "duplicate item %q", item)
			seen[item] = true
		}
	}
}

func TestTable_DrawsFromExpectedPools(t *testing.T) {
	g := NewGenerator(testConfig(), rng.New(7))

	eligible := map[string]bool{
		"Gold Pouch": true, "Health Potion": true, "Torn Map": true,
		"Wolf Pelt": true, "Sharp Fang": true,
	}
	for i := 0; i < 200; i++ {
		for _, item := range g.Table("Wolf", 4) {
			assert.True(t, eligible[item], "item %q not eligible at level 4", item)
		}
	}
}

func TestTable_TierItemsRequireLevel(t *testing.T) {
	g := NewGenerator(testConfig(), rng.New(11))

	sawMid, sawHigh := false, false
	for i := 0; i < 500; i++ {
		for _, item := range g.Table("Skeleton", 5) {
			switch item {
			case "Silver Ring", "Enchanted Scroll":
				sawMid = true
			case "Ancient Relic", "Dragon Scale":
				t.Fatalf("high-tier item %q at level 5", item)
			}
		}
	}
	assert.True(t, sawMid, "mid-tier items never drawn at level 5")

	for i := 0; i < 500; i++ {
		for _, item := range g.Table("Skeleton", 8) {
			switch item {
			case "Ancient Relic", "Dragon Scale":
				sawHigh = true
			}
		}
	}
	assert.True(t, sawHigh, "high-tier items never drawn at level 8")
}

func TestTable_UnknownEntityFallsBack(t *testing.T) {
	g := NewGenerator(testConfig(), rng.New(3))

	sawFallback := false
	for i := 0; i < 200; i++ {
		for _, item := range g.Table("Mimic", 1) {
			switch item {
			case "Gold Pouch", "Health Potion", "Torn Map":
			case "Unknown Item":
				sawFallback = true
			default:
				t.Fatalf("unexpected item %q for unknown entity", item)
			}
		}
	}
	assert.True(t, sawFallback, "fallback item never drawn")
}

// Repeated calls at the same level must draw from a candidate pool of
// constant size; a generator that appends tier items into its base tables
// would grow the pool call over call.
func TestTable_NoCrossCallPoolAccumulation(t *testing.T) {
	g := NewGenerator(testConfig(), rng.New(23))

	distinct := func(level int, calls int) int {
		seen := map[string]bool{}
		for i := 0; i < calls; i++ {
			for _, item := range g.Table("Wolf", level) {
				seen[item] = true
			}
		}
		return len(seen)
	}

	// 5 base + 2 mid items are reachable at level 5; no more may ever appear.
	assert.LessOrEqual(t, distinct(5, 500), 7)
	// At level 8 the high tier joins: 9 reachable items, never 10+.
	assert.LessOrEqual(t, distinct(8, 500), 9)
	// Back at level 1 the tiers must be gone again.
	assert.LessOrEqual(t, distinct(1, 500), 5)
}

func TestTable_TinyPoolReturnsWhatExists(t *testing.T) {
	cfg := config.Loot{
		CommonPool:   []string{"Bent Nail"},
		EntityPools:  map[string][]string{},
		FallbackItem: "Bent Nail", // collides with common on purpose
	}
	g := NewGenerator(cfg, rng.New(5))

	table := g.Table("Rat", 1)
	require.Equal(t, []string{"Bent Nail"}, table)
}

func TestNewGenerator_CopiesConfigTables(t *testing.T) {
	cfg := testConfig()
	g := NewGenerator(cfg, rng.New(1))

	cfg.CommonPool[0] = "MUTATED"
	cfg.EntityPools["Wolf"][0] = "MUTATED"

	sawMutated := false
	for i := 0; i < 300; i++ {
		for _, item := range g.Table("Wolf", 1) {
			if item == "MUTATED" {
				sawMutated = true
			}
		}
	}
	assert.False(t, sawMutated, "generator aliases caller-owned config slices")
}
