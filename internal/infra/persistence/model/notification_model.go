package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type           string     `gorm:"column:type;type:varchar(30);not null"`
	Titre          string     `gorm:"column:titre;type:varchar(200);not null"`
	Message        string     `gorm:"column:message;type:text;not null"`
	Lue            bool       `gorm:"column:lue;not null;default:false"`
	Date           time.Time  `gorm:"column:date;not null"`
	UtilisateurID  uuid.UUID  `gorm:"column:utilisateur_id;type:uuid;not null"`
	EntrepriseID   uuid.UUID  `gorm:"column:entreprise_id;type:uuid;not null"`
	RucheID        *uuid.UUID `gorm:"column:ruche_id;type:uuid"`
	InterventionID *uuid.UUID `gorm:"column:intervention_id;type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationDispatchModel is the GORM-specific struct for the 'notification_dispatches' table.
// The unique index on (kind, scope_id, day) is the storage-level dedup key for daily rules.
type NotificationDispatchModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Kind         string    `gorm:"type:varchar(30);not null;uniqueIndex:ux_dispatch_kind_scope_day,priority:1"`
	ScopeKind    string    `gorm:"type:varchar(20);not null"`
	ScopeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_dispatch_kind_scope_day,priority:2"`
	Day          time.Time `gorm:"type:date;not null;uniqueIndex:ux_dispatch_kind_scope_day,priority:3"`
	CreatedCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationDispatchModel) TableName() string {
	return "notification_dispatches"
}
