package model

import "time"

type Customer struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"nombre"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"correo"`
	Phone        string     `gorm:"type:varchar(20)" json:"telefono"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"activo"`
	IsStaff      bool       `gorm:"not null;default:false" json:"-"`
	LastLoginAt  *time.Time `json:"-"`
	RegisteredAt time.Time  `gorm:"not null;autoCreateTime" json:"fecha_registro"`
}
