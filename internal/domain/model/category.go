package model

import "time"

// Categories group the catalog. Deactivating one hides it from the public
// listing; deleting one is refused while products still reference it.
type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"nombre"`
	Description string    `gorm:"type:varchar(500)" json:"descripcion"`
	IsActive    bool      `gorm:"not null;default:true" json:"activa"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"fecha_creacion"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"fecha_modificacion"`
}
