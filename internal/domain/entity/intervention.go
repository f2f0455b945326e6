package entity

import (
	"time"

	"github.com/google/uuid"
)

// InterventionKind is the type of work done on a hive.
type InterventionKind string

const (
	InterventionKindVisit         InterventionKind = "Visite"
	InterventionKindFeeding       InterventionKind = "Nourrissement"
	InterventionKindTreatment     InterventionKind = "Traitement"
	InterventionKindHarvest       InterventionKind = "Recolte"
	InterventionKindDivision      InterventionKind = "Division"
	InterventionKindSuperAddition InterventionKind = "PoseHausse"
	InterventionKindHealthCheck   InterventionKind = "ControleSanitaire"
)

// String returns the stored tag of the InterventionKind.
func (k InterventionKind) String() string {
	return string(k)
}

// IsValid checks if the InterventionKind is a known value.
func (k InterventionKind) IsValid() bool {
	switch k {
	case InterventionKindVisit, InterventionKindFeeding, InterventionKindTreatment,
		InterventionKindHarvest, InterventionKindDivision, InterventionKindSuperAddition,
		InterventionKindHealthCheck:
		return true
	default:
		return false
	}
}

// ParseInterventionKind converts a stored tag into an InterventionKind.
func ParseInterventionKind(s string) (InterventionKind, error) {
	return parseEnum[InterventionKind](s, "intervention kind")
}

// Intervention is a dated piece of work recorded on a hive.
type Intervention struct {
	ID     uuid.UUID        `json:"id"`
	Kind   InterventionKind `json:"kind"`
	Date   time.Time        `json:"date"` // Calendar date.
	HiveID uuid.UUID        `json:"hive_id"`
}
