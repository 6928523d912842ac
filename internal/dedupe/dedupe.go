// Package dedupe provides shared singleflight groups used to collapse
// concurrent loads of the same record into one storage round trip.
package dedupe

import "golang.org/x/sync/singleflight"

// ProfileGroup deduplicates profile loads keyed by the canonical owner
// (see keys.Owner). A page opening the fight socket and the profile panel at
// the same time triggers a single read.
var ProfileGroup singleflight.Group
