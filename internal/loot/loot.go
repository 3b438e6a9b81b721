// Package loot assembles bounded reward tables for generated entities.
package loot

import (
	"emberdeep/internal/config"
	"emberdeep/internal/rng"
)

// Generator draws loot tables from level- and entity-dependent candidate
// pools. It holds its own copies of the configured pools, so no call can
// mutate the shared tables. Not safe for concurrent use unless src is.
type Generator struct {
	src      rng.Source
	common   []string
	entities map[string][]string
	midTier  []string
	highTier []string
	fallback string
}

// NewGenerator copies the configured pools into a Generator bound to src.
func NewGenerator(cfg config.Loot, src rng.Source) *Generator {
	entities := make(map[string][]string, len(cfg.EntityPools))
	for entity, pool := range cfg.EntityPools {
		entities[entity] = copyStrings(pool)
	}
	return &Generator{
		src:      src,
		common:   copyStrings(cfg.CommonPool),
		entities: entities,
		midTier:  copyStrings(cfg.MidTier),
		highTier: copyStrings(cfg.HighTier),
		fallback: cfg.Fallback(),
	}
}

// Table returns 2-4 distinct reward item identifiers for the given entity
// type and level, fewer only when the candidate pool itself is smaller.
//
// The candidate list is assembled fresh on every call; tier extensions for
// level >= 5 and level >= 8 never leak back into the base pools.
func (g *Generator) Table(entityType string, level int) []string {
	specific, ok := g.entities[entityType]
	if !ok {
		specific = []string{g.fallback}
	}

	candidates := make([]string, 0, len(g.common)+len(specific)+len(g.midTier)+len(g.highTier))
	candidates = append(candidates, g.common...)
	candidates = append(candidates, specific...)
	if level >= 5 {
		candidates = append(candidates, g.midTier...)
	}
	if level >= 8 {
		candidates = append(candidates, g.highTier...)
	}
	candidates = dedupe(candidates)

	count := 2 + g.src.Intn(3)
	return rng.Sample(g.src, candidates, count)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
