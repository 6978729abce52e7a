// Package model contains the GORM persistence models. They mirror the
// domain entities but carry storage concerns (column tags, table names)
// that must not leak into the domain layer.
package model

import "time"

// UserModel is the GORM model for the users table. The unique index on
// email is the storage-level guarantee behind registration uniqueness.
type UserModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Name         string    `gorm:"column:name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName overrides the default GORM table name.
func (UserModel) TableName() string {
	return "users"
}
