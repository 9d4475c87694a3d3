package model

import (
	"time"
)

// ProjectModel mirrors one ledger project. The primary key is the ledger's
// project id, not an auto-increment.
type ProjectModel struct {
	Id        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string `json:"name" gorm:"not null"`
	Description   string `json:"description" gorm:"type:text"`
	TargetAmount  int64  `json:"target_amount" gorm:"not null"`
	CurrentAmount int64  `json:"current_amount" gorm:"default:0"`
	Status        string `json:"status" gorm:"default:'funding'"`
}

// TableName sets the table name.
func (ProjectModel) TableName() string {
	return "project"
}
