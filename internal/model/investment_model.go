package model

import (
	"time"
)

// InvestmentModel mirrors one committed investment record. The composite
// unique index enforces the one-record-per-investor-per-project rule at the
// durable layer too.
type InvestmentModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Investor       string `json:"investor" gorm:"not null;uniqueIndex:idx_investor_project"`
	ProjectId      int64  `json:"project_id" gorm:"not null;uniqueIndex:idx_investor_project"`
	Amount         int64  `json:"amount" gorm:"not null"`
	InvestmentDate int64  `json:"investment_date"`
}

// TableName sets the table name.
func (InvestmentModel) TableName() string {
	return "investment_record"
}
