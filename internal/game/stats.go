package game

// Stats is the persisted progression record of a boxer. It is stored under the
// "boxer_save" key and read by the damage calculator for strength.
type Stats struct {
	Strength int `json:"strength"`
	Agility  int `json:"agility"`
	Cash     int `json:"cash"`
}

// Defaults applied when no stats record exists for a profile.
const (
	DefaultStrength = 10
	DefaultAgility  = 10
	DefaultCash     = 1000
)

// DefaultStats returns the starting stats of a new profile.
func DefaultStats() Stats {
	return Stats{Strength: DefaultStrength, Agility: DefaultAgility, Cash: DefaultCash}
}

// Skills is the persisted "boxer_skills" record. The combat core does not
// read it; it is carried so the saved shape round-trips intact.
type Skills []string
