// Package entity defines the domain models for the product feature.
package entity

import "time"

// Product represents a tradable currency pair on the exchange.
// The dashboard lists products so the operator can pick which pair
// the trade parameters editor targets.
type Product struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
