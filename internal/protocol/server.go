package protocol

type Stats struct {
	Strength int `json:"strength"`
	Agility  int `json:"agility"`
	Cash     int `json:"cash"`
}

type Welcome struct {
	TickHz         int     `json:"tickHz"`
	Stats          Stats   `json:"stats"`
	Health         float64 `json:"health"`
	Stamina        float64 `json:"stamina"`
	OpponentHealth float64 `json:"opponentHealth"`
	OpponentState  string  `json:"opponentState"`
}

type AttackStarted struct {
	Technique string `json:"technique"`
	Hand      string `json:"hand" jsonschema:"enum=left,enum=right"`
}

type Damage struct {
	Target     string  `json:"target" jsonschema:"enum=player,enum=opponent"`
	Amount     float64 `json:"amount"`
	WasCounter bool    `json:"wasCounter,omitempty"`
}

type Resources struct {
	Health         float64 `json:"health"`
	Stamina        float64 `json:"stamina"`
	OpponentHealth float64 `json:"opponentHealth"`
}

type OpponentState struct {
	State string `json:"state" jsonschema:"enum=idle,enum=telegraphing,enum=attacking,enum=recovering"`
}

type FightConcluded struct {
	Fight      uint64 `json:"fight"`
	CashReward int    `json:"cashReward"`
	Stats      Stats  `json:"stats"`
}

type FightLost struct {
	Fight uint64 `json:"fight"`
}

type StatDelta struct {
	Strength int `json:"strength,omitempty"`
	Agility  int `json:"agility,omitempty"`
}

// LootResolved and LootRejected are returned by the loot endpoint.
type LootResolved struct {
	Tier      string    `json:"tier" jsonschema:"enum=common,enum=rare,enum=super_rare"`
	Item      string    `json:"item"`
	StatDelta StatDelta `json:"statDelta"`
	Stats     Stats     `json:"stats"`
}

type LootRejected struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}
