package model

import (
	"time"
)

// CampaignModel is the durable snapshot of the campaign-level ledger state.
// A single row (id 1) is kept and overwritten.
type CampaignModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Administrator string `json:"administrator" gorm:"not null"`
	TargetAmount  int64  `json:"target_amount"`
	Deadline      int64  `json:"deadline"`
	Active        bool   `json:"active"`
	RaisedAmount  int64  `json:"raised_amount" gorm:"default:0"`
}

// CampaignRowId is the fixed primary key of the singleton campaign row.
const CampaignRowId int64 = 1

// TableName sets the table name.
func (CampaignModel) TableName() string {
	return "campaign"
}
