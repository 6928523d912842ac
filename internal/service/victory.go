package service

import (
	"context"

	"github.com/kawertyff-source/Simungboxing-128/internal/constants"
	"github.com/kawertyff-source/Simungboxing-128/internal/logging"
	"github.com/kawertyff-source/Simungboxing-128/internal/progression"
)

// FlushAfterFight persists the profile once a fight is over. Failures are
// logged and returned; the fight itself is never rolled back.
func FlushAfterFight(ctx context.Context, profiles *Profiles, prof *progression.Profile, fight uint64, won bool) error {
	fields := logging.Fields{constants.LogFieldOwner: prof.Owner(), constants.LogFieldFight: fight, "won": won}
	if err := profiles.Save(ctx, prof); err != nil {
		logging.Error("failed to flush profile after fight", err, fields)
		return err
	}
	fields[constants.LogFieldCash] = prof.Stats().Cash
	logging.Info("fight finished", fields)
	return nil
}
