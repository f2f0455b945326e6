// Package model contains the GORM structs mapped onto the shared database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SensorModel is the GORM-specific struct for the 'capteurs' table.
// The GPS geofence columns keep their camelCase names from the shared schema.
type SensorModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type                  string     `gorm:"column:type;type:varchar(20);not null"`
	Identifiant           string     `gorm:"column:identifiant;type:varchar(100);not null;uniqueIndex"`
	Actif                 bool       `gorm:"column:actif;not null;default:true"`
	BatteriePct           *float64   `gorm:"column:batteriePct"`
	DerniereCommunication *time.Time `gorm:"column:derniereCommunication"`
	RucheID               uuid.UUID  `gorm:"column:ruche_id;type:uuid;not null;index"`
	GPSAlertActive        bool       `gorm:"column:gpsAlertActive;not null;default:false"`
	GPSReferenceLat       *float64   `gorm:"column:gpsReferenceLat"`
	GPSReferenceLng       *float64   `gorm:"column:gpsReferenceLng"`
	GPSThresholdMeters    float64    `gorm:"column:gpsThresholdMeters;not null;default:100"`
	GPSLastCheckedAt      *time.Time `gorm:"column:gpsLastCheckedAt"`
	GPSLastAlertAt        *time.Time `gorm:"column:gpsLastAlertAt"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Ruche *HiveModel `gorm:"foreignKey:RucheID"`
}

// TableName explicitly sets the table name for GORM.
func (SensorModel) TableName() string {
	return "capteurs"
}

// AlertModel is the GORM-specific struct for the 'alertes' table.
type AlertModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type      string    `gorm:"column:type;type:varchar(30);not null"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Acquittee bool      `gorm:"column:acquittee;not null;default:false"`
	CapteurID uuid.UUID `gorm:"column:capteur_id;type:uuid;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alertes"
}
