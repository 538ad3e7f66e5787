package model

// Boss is a fixed PvE opponent definition. Defense is carried for forward
// compatibility but does not participate in damage math.
type Boss struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	HP       int    `json:"hp"`
	Attack   int    `json:"attack"`
	Defense  int    `json:"defense"`
	XPReward int    `json:"xpReward"`
}

// DefaultBossID is the boss fought when an unknown id is requested.
const DefaultBossID = "PROCRASTINATION"

var bossCatalog = map[string]Boss{
	"PROCRASTINATION": {
		ID:       "PROCRASTINATION",
		Name:     "Swamp of Procrastination",
		Level:    5,
		HP:       500,
		Attack:   20,
		Defense:  10,
		XPReward: 100,
	},
	"LAZINESS": {
		ID:       "LAZINESS",
		Name:     "Titan of Laziness",
		Level:    10,
		HP:       1200,
		Attack:   45,
		Defense:  30,
		XPReward: 300,
	},
	"DOUBT": {
		ID:       "DOUBT",
		Name:     "Shadow of Doubt",
		Level:    20,
		HP:       3000,
		Attack:   80,
		Defense:  60,
		XPReward: 1000,
	},
}

// BossByID returns the boss for id, falling back to the default boss when
// the id is unknown.
func BossByID(id string) Boss {
	if b, ok := bossCatalog[id]; ok {
		return b
	}
	return bossCatalog[DefaultBossID]
}

// Bosses returns the full boss catalog.
func Bosses() []Boss {
	return []Boss{
		bossCatalog["PROCRASTINATION"],
		bossCatalog["LAZINESS"],
		bossCatalog["DOUBT"],
	}
}
