package quest

import (
	"fmt"
	"strings"

	"emberdeep/internal/config"
	"emberdeep/internal/rng"
)

const (
	goldPerDifficulty = 50
	xpPerDifficulty   = 100
)

// bonusItem is granted for every quest above the baseline difficulty.
const bonusItem = "Health Potion"

// Generator produces quests from the configured vocabularies. Vocabularies
// are copied at construction. Not safe for concurrent use unless src is.
type Generator struct {
	src          rng.Source
	killTargets  []string
	collectItems []string
	deliverItems []string
	destinations []string
	escortNPCs   []string
	subjects     []string
}

// NewGenerator copies the configured vocabularies into a Generator bound
// to src.
func NewGenerator(cfg config.Quests, src rng.Source) *Generator {
	cp := func(in []string) []string {
		out := make([]string, len(in))
		copy(out, in)
		return out
	}
	return &Generator{
		src:          src,
		killTargets:  cp(cfg.KillTargets),
		collectItems: cp(cfg.CollectItems),
		deliverItems: cp(cfg.DeliverItems),
		destinations: cp(cfg.Destinations),
		escortNPCs:   cp(cfg.EscortNPCs),
		subjects:     cp(cfg.InvestigateSubjects),
	}
}

// Generate builds a quest for the given location. The archetype is chosen
// uniformly; rewards are a deterministic function of difficulty. Difficulty
// below 1 is raised to 1.
func (g *Generator) Generate(location string, difficulty int) Quest {
	if difficulty < 1 {
		difficulty = 1
	}

	archetype := rng.Pick(g.src, Archetypes)
	name, description := g.fill(archetype, location)

	rewardItems := []string{}
	if difficulty > 1 {
		rewardItems = []string{bonusItem}
	}

	return Quest{
		Name:        name,
		Description: description,
		Difficulty:  difficulty,
		RewardGold:  goldPerDifficulty * difficulty,
		RewardXP:    xpPerDifficulty * difficulty,
		RewardItems: rewardItems,
		Status:      StatusActive,
		Progress:    0,
	}
}

// fill samples the archetype's tokens and renders its name/description
// template pair.
func (g *Generator) fill(archetype Archetype, location string) (name, description string) {
	switch archetype {
	case Kill:
		target := rng.Pick(g.src, g.killTargets)
		name = fmt.Sprintf("Eliminate the %s", target)
		description = fmt.Sprintf("Clear out the %s causing trouble near %s.",
			strings.ToLower(target), location)

	case Collect:
		item := rng.Pick(g.src, g.collectItems)
		name = fmt.Sprintf("Gather %s", item)
		description = fmt.Sprintf("Collect valuable %s from the area around %s.",
			strings.ToLower(item), location)

	case Deliver:
		item := rng.Pick(g.src, g.deliverItems)
		destination := rng.Pick(g.src, g.destinations)
		name = fmt.Sprintf("Deliver %s", item)
		description = fmt.Sprintf("Deliver an important %s to the %s from %s.",
			strings.ToLower(item), strings.ToLower(destination), location)

	case Escort:
		npc := rng.Pick(g.src, g.escortNPCs)
		destination := rng.Pick(g.src, g.destinations)
		name = fmt.Sprintf("Escort the %s", npc)
		description = fmt.Sprintf("Safely escort the %s from %s to the %s.",
			strings.ToLower(npc), location, strings.ToLower(destination))

	case Investigate:
		subject := rng.Pick(g.src, g.subjects)
		name = fmt.Sprintf("Investigate the %s", subject)
		description = fmt.Sprintf("Discover the source of the %s near %s.",
			strings.ToLower(subject), location)
	}
	return name, description
}
