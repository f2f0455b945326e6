package entity

import (
	"time"

	"github.com/google/uuid"
)

// HiveStatus is the health status of a hive.
type HiveStatus string

const (
	HiveStatusActive HiveStatus = "Active"
	HiveStatusWeak   HiveStatus = "Faible"
	HiveStatusSick   HiveStatus = "Malade"
	HiveStatusDead   HiveStatus = "Morte"
)

// String returns the stored tag of the HiveStatus.
func (s HiveStatus) String() string {
	return string(s)
}

// IsValid checks if the HiveStatus is a known value.
func (s HiveStatus) IsValid() bool {
	switch s {
	case HiveStatusActive, HiveStatusWeak, HiveStatusSick, HiveStatusDead:
		return true
	default:
		return false
	}
}

// ParseHiveStatus converts a stored tag into a HiveStatus.
func ParseHiveStatus(s string) (HiveStatus, error) {
	return parseEnum[HiveStatus](s, "hive status")
}

// Hive is a colony placed in an apiary.
type Hive struct {
	ID               uuid.UUID  `json:"id"`
	RegistrationCode string     `json:"registration_code"`
	Status           HiveStatus `json:"status"`
	DiseaseID        *uuid.UUID `json:"disease_id"`
	ApiaryID         uuid.UUID  `json:"apiary_id"`
	CompanyID        *uuid.UUID `json:"company_id"` // Resolved through the apiary, nil when the apiary has no company.
	CreatedAt        time.Time  `json:"created_at"`
}

// Apiary is a site holding hives.
type Apiary struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	CompanyID *uuid.UUID `json:"company_id"`
}
