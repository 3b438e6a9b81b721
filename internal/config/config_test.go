package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_TablesArePopulated(t *testing.T) {
	c := Default()

	assert.Len(t, c.Loot.CommonPool, 3)
	assert.Len(t, c.Loot.MidTier, 2)
	assert.Len(t, c.Loot.HighTier, 2)
	assert.Equal(t, "Unknown Item", c.Loot.FallbackItem)
	assert.NotEmpty(t, c.Loot.EntityPools)

	assert.Equal(t, "wilderness", c.Encounters.DefaultLocation)
	assert.Contains(t, c.Encounters.Pools, "wilderness")
	assert.Contains(t, c.Encounters.Pools, "dungeon")

	// Every enemy that has a loot pool must be spelled the same as in the
	// encounter pools, or the pool can never be hit.
	known := map[string]bool{}
	for _, pool := range c.Encounters.Pools {
		for _, name := range pool {
			known[name] = true
		}
	}
	for entity := range c.Loot.EntityPools {
		assert.True(t, known[entity], "loot pool %q has no matching enemy", entity)
	}
}

func TestDefault_PoolsHaveNoCrossDuplicates(t *testing.T) {
	c := Default()

	seen := map[string]string{}
	add := func(group string, items []string) {
		for _, it := range items {
			if prev, ok := seen[it]; ok {
				t.Errorf("item %q appears in both %s and %s", it, prev, group)
			}
			seen[it] = group
		}
	}
	add("common", c.Loot.CommonPool)
	add("mid", c.Loot.MidTier)
	add("high", c.Loot.HighTier)
	for entity, pool := range c.Loot.EntityPools {
		add("entity:"+entity, pool)
	}
}

func TestLoad_PartialFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emberdeep.yml")
	body := []byte("seeded_rng:\n  enabled: true\n  seed: 1234\nloot:\n  common_pool: [\"Copper Coin\", \"Bread\"]\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.True(t, c.SeededRNG.Enabled)
	assert.Equal(t, int64(1234), c.SeededRNG.Seed)
	assert.Equal(t, []string{"Copper Coin", "Bread"}, c.Loot.CommonPool)

	// Everything absent from the file comes from the defaults.
	def := Default()
	assert.Equal(t, def.Encounters.Pools, c.Encounters.Pools)
	assert.Equal(t, def.Quests.KillTargets, c.Quests.KillTargets)
	assert.Equal(t, def.DataDir, c.DataDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("loot: ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("EMBERDEEP_SEED", "777")
	t.Setenv("EMBERDEEP_DATA_DIR", "/tmp/emberdeep-test")

	c := Default()
	require.NoError(t, FromEnv(c))

	assert.True(t, c.SeededRNG.Enabled)
	assert.Equal(t, int64(777), c.SeededRNG.Seed)
	assert.Equal(t, "/tmp/emberdeep-test", c.DataDir)
}

func TestFromEnv_NoVariablesLeavesConfigAlone(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv makes the variable truly absent.
	t.Setenv("EMBERDEEP_SEED", "0")
	t.Setenv("EMBERDEEP_DATA_DIR", "x")
	os.Unsetenv("EMBERDEEP_SEED")
	os.Unsetenv("EMBERDEEP_DATA_DIR")

	c := Default()
	require.NoError(t, FromEnv(c))

	assert.False(t, c.SeededRNG.Enabled)
	assert.Equal(t, "data", c.DataDir)
}
