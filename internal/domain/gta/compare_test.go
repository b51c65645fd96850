package gta

import (
	"testing"
	"time"

	"gtasync/internal/ports"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestHasChangesDetectsTitleMismatch(t *testing.T) {
	existing := ports.Intervention{Title: "A", Type: "X"}
	incoming := Normalized{Title: strPtr("B"), Type: strPtr("X")}

	if !HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = false, want true for title mismatch")
	}
}

func TestHasChangesAllFieldsMatch(t *testing.T) {
	existing := ports.Intervention{
		Title:         "Steel Tariff",
		Type:          "Import tariff",
		Evaluation:    "Red",
		DateAnnounced: datePtr(2024, 1, 1),
	}
	incoming := Normalized{
		Title:         strPtr("Steel Tariff"),
		Type:          strPtr("Import tariff"),
		Evaluation:    strPtr("Red"),
		DateAnnounced: datePtr(2024, 1, 1),
	}

	if HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = true, want false when every present field matches")
	}
}

func TestHasChangesIgnoresAbsentFields(t *testing.T) {
	existing := ports.Intervention{
		Title:              "Steel Tariff",
		Description:        "long text the source stopped sending",
		ImplementationDate: datePtr(2024, 3, 1),
	}
	incoming := Normalized{Title: strPtr("Steel Tariff")}

	if HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = true, absent incoming fields must not trigger a change")
	}
}

func TestHasChangesStoredEmptyEqualsNull(t *testing.T) {
	existing := ports.Intervention{Title: "Steel Tariff"}
	incoming := Normalized{Title: strPtr("Steel Tariff"), Source: strPtr("")}

	if HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = true, empty incoming vs unset stored is unchanged")
	}
}

func TestHasChangesDateResentEverySync(t *testing.T) {
	existing := ports.Intervention{DateAnnounced: datePtr(2024, 1, 1)}
	incoming := Normalized{DateAnnounced: datePtr(2024, 1, 1)}

	if HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = true, identical re-sent date must be unchanged")
	}
}

func TestHasChangesNewDateOnUnsetColumn(t *testing.T) {
	existing := ports.Intervention{}
	incoming := Normalized{RemovalDate: datePtr(2025, 6, 30)}

	if !HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = false, incoming date over stored NULL is a change")
	}
}

func TestHasChangesDateValueDiffers(t *testing.T) {
	existing := ports.Intervention{DateAnnounced: datePtr(2024, 1, 1)}
	incoming := Normalized{DateAnnounced: datePtr(2024, 1, 2)}

	if !HasChanges(existing, incoming) {
		t.Fatalf("HasChanges() = false, want true for differing dates")
	}
}
