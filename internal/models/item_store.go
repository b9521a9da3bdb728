package models

import (
	"time"
)

type ItemStore struct {
	ID        int        `json:"id"`
	ItemID    int        `json:"item_id"`
	StoreName string     `json:"store_name"`
	Price     float64    `json:"price"`
	Stock     int        `json:"stock"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
