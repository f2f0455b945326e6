package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies an in-app notification.
type NotificationKind string

const (
	NotificationKindVisitReminder     NotificationKind = "RappelVisite"
	NotificationKindTreatmentReminder NotificationKind = "RappelTraitement"
	NotificationKindTeam              NotificationKind = "Equipe"
	NotificationKindSeasonal          NotificationKind = "Saisonnier"
	NotificationKindSanitaryAlert     NotificationKind = "AlerteSanitaire"
	NotificationKindGPSAlert          NotificationKind = "AlerteGPS"
)

// String returns the stored tag of the NotificationKind.
func (k NotificationKind) String() string {
	return string(k)
}

// IsValid checks if the NotificationKind is a known value.
func (k NotificationKind) IsValid() bool {
	switch k {
	case NotificationKindVisitReminder, NotificationKindTreatmentReminder, NotificationKindTeam,
		NotificationKindSeasonal, NotificationKindSanitaryAlert, NotificationKindGPSAlert:
		return true
	default:
		return false
	}
}

// ParseNotificationKind converts a stored tag into a NotificationKind.
func ParseNotificationKind(s string) (NotificationKind, error) {
	return parseEnum[NotificationKind](s, "notification kind")
}

// Notification is a message addressed to one user of a company.
type Notification struct {
	ID             uuid.UUID        `json:"id"`
	Kind           NotificationKind `json:"kind"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Read           bool             `json:"read"`
	Date           time.Time        `json:"date"`
	UserID         uuid.UUID        `json:"user_id"`
	CompanyID      uuid.UUID        `json:"company_id"`
	HiveID         *uuid.UUID       `json:"hive_id"`
	InterventionID *uuid.UUID       `json:"intervention_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ScopeKind is the entity a daily notification is anchored to.
type ScopeKind string

const (
	ScopeKindHive    ScopeKind = "hive"
	ScopeKindCompany ScopeKind = "company"
)

// String returns the stored tag of the ScopeKind.
func (k ScopeKind) String() string {
	return string(k)
}

// IsValid checks if the ScopeKind is a known value.
func (k ScopeKind) IsValid() bool {
	return k == ScopeKindHive || k == ScopeKindCompany
}

// ParseScopeKind converts a stored tag into a ScopeKind.
func ParseScopeKind(s string) (ScopeKind, error) {
	return parseEnum[ScopeKind](s, "scope kind")
}

// NotificationScope identifies the hive or company a notification is about.
type NotificationScope struct {
	Kind ScopeKind `json:"kind"`
	ID   uuid.UUID `json:"id"`
}

// HiveScope anchors a notification to a hive.
func HiveScope(id uuid.UUID) NotificationScope {
	return NotificationScope{Kind: ScopeKindHive, ID: id}
}

// CompanyScope anchors a notification to a company.
func CompanyScope(id uuid.UUID) NotificationScope {
	return NotificationScope{Kind: ScopeKindCompany, ID: id}
}

// DispatchKey is the (kind, scope, day) tuple that suppresses duplicate daily notifications.
// Day is truncated to a calendar date in the scheduler timezone.
type DispatchKey struct {
	Kind  NotificationKind  `json:"kind"`
	Scope NotificationScope `json:"scope"`
	Day   time.Time         `json:"day"`
}

// NotificationDispatch records a claimed DispatchKey.
type NotificationDispatch struct {
	Key          DispatchKey `json:"key"`
	CreatedCount int         `json:"created_count"`
	CreatedAt    time.Time   `json:"created_at"`
}
