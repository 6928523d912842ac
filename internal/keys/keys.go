package keys

import "strings"

// Record names of the persisted save slots.
const (
	StatsRecord  = "boxer_save"
	SkillsRecord = "boxer_skills"
)

// Owner canonicalizes a profile owner (an account email) so the same person
// always maps to the same keys: trimmed and lower-cased.
func Owner(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// StatsKey is the storage key of an owner's stats record.
func StatsKey(owner string) string {
	return StatsRecord + ":" + Owner(owner)
}

// SkillsKey is the storage key of an owner's skills record.
func SkillsKey(owner string) string {
	return SkillsRecord + ":" + Owner(owner)
}
