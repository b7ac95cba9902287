package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. The bigserial primary key stays
// internal; PublicID is the only identifier ever written to the wire.
// It is an exported type so the persistence layer can share it across repositories.
type AccountModel struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	PublicID     string    `gorm:"column:public_id;type:varchar(50);uniqueIndex:uq_accounts_public_id;not null"`
	Username     string    `gorm:"type:varchar(20);uniqueIndex:uq_accounts_username;not null"`
	Email        string    `gorm:"type:varchar(120);uniqueIndex:uq_accounts_email;not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(80);not null"`
	Active       bool      `gorm:"not null;default:true"`
	Admin        bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
