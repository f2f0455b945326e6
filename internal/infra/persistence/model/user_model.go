package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'utilisateurs' table.
// Only the columns read by this service are mapped.
type UserModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Nom    string    `gorm:"column:nom;type:varchar(100)"`
	Prenom string    `gorm:"column:prenom;type:varchar(100)"`
	Email  string    `gorm:"column:email;type:varchar(254)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "utilisateurs"
}

// MembershipModel is the GORM-specific struct for the 'utilisateurs_entreprises' table.
type MembershipModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UtilisateurID uuid.UUID `gorm:"column:utilisateur_id;type:uuid;index"`
	EntrepriseID  uuid.UUID `gorm:"column:entreprise_id;type:uuid;index"`
	Role          string    `gorm:"column:role;type:varchar(20)"`
	CreatedAt     time.Time `gorm:"->"`

	Utilisateur *UserModel `gorm:"foreignKey:UtilisateurID"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "utilisateurs_entreprises"
}
