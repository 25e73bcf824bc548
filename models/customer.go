package models

import "time"

type CustomerTier string

const (
	TierBronze CustomerTier = "Bronze"
	TierSilver CustomerTier = "Silver"
	TierGold   CustomerTier = "Gold"
)

type Customer struct {
	ID            string       `gorm:"primaryKey" json:"id"` // uuid, assigned on create
	Name          string       `gorm:"not null" json:"name"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Address       string       `json:"address"`
	GSTIN         string       `json:"gstin"` // B2B customers
	LoyaltyPoints float64      `json:"loyalty_points"`
	TotalSpend    float64      `json:"total_spend"`
	Tier          CustomerTier `gorm:"type:VARCHAR(10);default:'Bronze'" json:"tier"` // display label, not recomputed here
	JoinDate      time.Time    `json:"join_date"`
}
