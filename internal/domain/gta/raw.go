// Package gta holds the pure core of the trade-intervention sync engine:
// the typed shape of the remote API payload, the field normalizer, the
// change comparator, the session token and the error taxonomy. Nothing in
// this package touches the network or the database.
package gta

import (
	"encoding/json"
	"strings"
)

// SyncOrigin tags every stored row with the pipeline that produced it.
const SyncOrigin = "gta-api"

// FlexString decodes a JSON string, number or null into a string. Product
// and sector codes arrive in either representation depending on the
// endpoint version.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// CodedEntity is one element of a jurisdiction/product/sector list. Only
// the fields relevant to flattening are decoded.
type CodedEntity struct {
	Name    FlexString `json:"name"`
	HSCode  FlexString `json:"hs_code"`
	CPCCode FlexString `json:"cpc_code"`
	Code    FlexString `json:"code"`
}

// RawIntervention is the typed decode of one API result object. Every field
// is optional; presence is what drives the no-clobber update semantics, so
// scalars are pointers and lists are nil-able slices.
type RawIntervention struct {
	InterventionID          *int64        `json:"intervention_id"`
	StateActTitle           *string       `json:"state_act_title"`
	InterventionType        *string       `json:"intervention_type"`
	GTAEvaluation           *string       `json:"gta_evaluation"`
	InterventionDescription *string       `json:"intervention_description"`
	DateAnnounced           *string       `json:"date_announced"`
	DateImplemented         *string       `json:"date_implemented"`
	DateRemoved             *string       `json:"date_removed"`
	ImplementingJurisdicts  []CodedEntity `json:"implementing_jurisdictions"`
	AffectedJurisdictions   []CodedEntity `json:"affected_jurisdictions"`
	AffectedProducts        []CodedEntity `json:"affected_products"`
	AffectedSectors         []CodedEntity `json:"affected_sectors"`
	Source                  *string       `json:"source"`
}

// DecodeRaw parses one element of the result list. A failure here is a
// per-record problem, not a protocol problem: the caller logs it and moves
// on to the next element.
func DecodeRaw(data json.RawMessage) (RawIntervention, error) {
	var raw RawIntervention
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawIntervention{}, &RecordError{Reason: "malformed record: " + err.Error()}
	}
	return raw, nil
}
