package model

import (
	"time"

	"github.com/google/uuid"
)

// ApiaryModel is the GORM-specific struct for the 'ruchers' table.
type ApiaryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	Nom          string     `gorm:"column:nom;type:varchar(200)"`
	Latitude     float64    `gorm:"column:latitude"`
	Longitude    float64    `gorm:"column:longitude"`
	EntrepriseID *uuid.UUID `gorm:"column:entreprise_id;type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (ApiaryModel) TableName() string {
	return "ruchers"
}

// HiveModel is the GORM-specific struct for the 'ruches' table.
type HiveModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key"`
	Immatriculation string     `gorm:"column:immatriculation;type:varchar(50)"`
	Statut          string     `gorm:"column:statut;type:varchar(20)"`
	MaladieID       *uuid.UUID `gorm:"column:maladie_id;type:uuid"`
	RucherID        uuid.UUID  `gorm:"column:rucher_id;type:uuid"`
	CreatedAt       time.Time  `gorm:"->"`

	Rucher *ApiaryModel `gorm:"foreignKey:RucherID"`
}

// TableName explicitly sets the table name for GORM.
func (HiveModel) TableName() string {
	return "ruches"
}

// InterventionModel is the GORM-specific struct for the 'interventions' table.
type InterventionModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Type    string    `gorm:"column:type;type:varchar(30)"`
	Date    time.Time `gorm:"column:date;type:date"`
	RucheID uuid.UUID `gorm:"column:ruche_id;type:uuid;index"`
}

// TableName explicitly sets the table name for GORM.
func (InterventionModel) TableName() string {
	return "interventions"
}
