// Package quest synthesizes quests from archetype template grammars.
package quest

// Status tracks the lifecycle of a quest.
type Status string

const (
	StatusActive   Status = "active"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Archetype is one of the five fixed quest categories.
type Archetype string

const (
	Kill        Archetype = "kill"
	Collect     Archetype = "collect"
	Deliver     Archetype = "deliver"
	Escort      Archetype = "escort"
	Investigate Archetype = "investigate"
)

// Archetypes lists every quest archetype in selection order.
var Archetypes = []Archetype{Kill, Collect, Deliver, Escort, Investigate}

// Quest is a generated objective with deterministic difficulty-scaled
// rewards.
type Quest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Difficulty  int      `json:"difficulty"`
	RewardGold  int      `json:"reward_gold"`
	RewardXP    int      `json:"reward_xp"`
	RewardItems []string `json:"reward_items"`
	Status      Status   `json:"status"`
	Progress    int      `json:"progress"`
}
