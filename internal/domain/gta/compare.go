package gta

import (
	"time"

	"gtasync/internal/ports"
)

// HasChanges reports whether any field present in the incoming normalized
// record differs from the stored one. Absent (nil) incoming fields are
// never compared, matching the rule that absence never overwrites. The
// comparison short-circuits on the first mismatch.
//
// The decision is total over typed inputs; if a comparison branch ever
// becomes fallible, the documented fallback is to report changed and accept
// a redundant write rather than miss a real change.
func HasChanges(existing ports.Intervention, in Normalized) bool {
	strFields := []struct {
		incoming *string
		stored   string
	}{
		{in.Title, existing.Title},
		{in.Description, existing.Description},
		{in.Type, existing.Type},
		{in.Evaluation, existing.Evaluation},
		{in.ImplementingJurisdiction, existing.ImplementingJurisdiction},
		{in.AffectedJurisdictions, existing.AffectedJurisdictions},
		{in.TargetedProductsHS6, existing.TargetedProductsHS6},
		{in.TargetedSectorsCPC3, existing.TargetedSectorsCPC3},
		{in.Source, existing.Source},
	}
	for _, f := range strFields {
		if f.incoming != nil && *f.incoming != f.stored {
			return true
		}
	}

	dateFields := []struct {
		incoming *time.Time
		stored   *time.Time
	}{
		{in.DateAnnounced, existing.DateAnnounced},
		{in.ImplementationDate, existing.ImplementationDate},
		{in.RemovalDate, existing.RemovalDate},
	}
	for _, f := range dateFields {
		if f.incoming == nil {
			continue
		}
		if f.stored == nil || !sameDate(*f.incoming, *f.stored) {
			return true
		}
	}

	return false
}

// sameDate compares by the resolved date value, not the string or wall
// clock representation, so a date re-sent every sync stays "unchanged".
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
