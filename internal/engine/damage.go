package engine

// Damage returns the hit value for an attacker of the given strength. A
// counter multiplies the base. There is no random variance.
func Damage(t Tuning, strength int, counter bool) float64 {
	dmg := t.BaseDamage + float64(strength)*t.StrengthFactor
	if counter {
		dmg *= t.CounterMultiplier
	}
	return dmg
}
