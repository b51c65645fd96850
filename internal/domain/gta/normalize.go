package gta

import (
	"strings"
	"time"
)

// Column bounds of the interventions table. Joined or oversized strings are
// truncated to these, never rejected.
const (
	MaxTitle                    = 255
	MaxDescription              = 1000
	MaxType                     = 100
	MaxEvaluation               = 50
	MaxImplementingJurisdiction = 255
	MaxAffectedJurisdictions    = 500
	MaxTargetedProducts         = 1000
	MaxTargetedSectors          = 500
	MaxSource                   = 500
)

// Normalized is the candidate record produced from one raw API object. Nil
// fields were absent from the source and must neither be written nor
// compared.
type Normalized struct {
	InterventionID           int64
	Title                    *string
	Description              *string
	Type                     *string
	Evaluation               *string
	DateAnnounced            *time.Time
	ImplementationDate       *time.Time
	RemovalDate              *time.Time
	ImplementingJurisdiction *string
	AffectedJurisdictions    *string
	TargetedProductsHS6      *string
	TargetedSectorsCPC3      *string
	Source                   *string
}

// Normalize maps a raw API record onto the storage column contracts:
// scalars copied when present, date strings resolved to dates, nested
// entity lists flattened to ", "-joined strings, everything truncated to
// its column bound. The only rejection is a missing intervention_id.
func Normalize(raw RawIntervention) (Normalized, error) {
	if raw.InterventionID == nil {
		return Normalized{}, &RecordError{Reason: "missing intervention_id"}
	}

	n := Normalized{InterventionID: *raw.InterventionID}

	n.Title = truncatePtr(raw.StateActTitle, MaxTitle)
	n.Description = truncatePtr(raw.InterventionDescription, MaxDescription)
	n.Type = truncatePtr(raw.InterventionType, MaxType)
	n.Evaluation = truncatePtr(raw.GTAEvaluation, MaxEvaluation)
	n.Source = truncatePtr(raw.Source, MaxSource)

	n.DateAnnounced = parseDate(raw.DateAnnounced)
	n.ImplementationDate = parseDate(raw.DateImplemented)
	n.RemovalDate = parseDate(raw.DateRemoved)

	if raw.ImplementingJurisdicts != nil {
		n.ImplementingJurisdiction = joined(raw.ImplementingJurisdicts, pickName, MaxImplementingJurisdiction)
	}
	if raw.AffectedJurisdictions != nil {
		n.AffectedJurisdictions = joined(raw.AffectedJurisdictions, pickName, MaxAffectedJurisdictions)
	}
	if raw.AffectedProducts != nil {
		n.TargetedProductsHS6 = joined(raw.AffectedProducts, pickHSCode, MaxTargetedProducts)
	}
	if raw.AffectedSectors != nil {
		n.TargetedSectorsCPC3 = joined(raw.AffectedSectors, pickCPCCode, MaxTargetedSectors)
	}

	return n, nil
}

// Truncate bounds s to max characters, cutting on a rune boundary so a
// multibyte character is never split into invalid UTF-8. Truncation is a
// silent, deliberate data-loss policy of this pipeline.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}

	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}

func truncatePtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	out := Truncate(*s, max)
	return &out
}

// parseDate resolves a source date string. Unparseable values are treated
// like absent ones so a single bad date cannot fail the record or clear a
// stored value.
func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func joined(items []CodedEntity, pick func(CodedEntity) string, max int) *string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		// Items missing every candidate field contribute nothing,
		// not an empty placeholder.
		if v := strings.TrimSpace(pick(item)); v != "" {
			parts = append(parts, v)
		}
	}

	out := Truncate(strings.Join(parts, ", "), max)
	return &out
}

func pickName(e CodedEntity) string {
	return e.Name.String()
}

func pickHSCode(e CodedEntity) string {
	if v := e.HSCode.String(); v != "" {
		return v
	}
	return e.Code.String()
}

func pickCPCCode(e CodedEntity) string {
	if v := e.CPCCode.String(); v != "" {
		return v
	}
	return e.Code.String()
}
