package models

import (
	"time"
)

type Item struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	UserID      int        `json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ItemWithStores carries an item together with all of its store listings.
// Stores is never nil so that items without listings serialize as [].
type ItemWithStores struct {
	Item
	Stores []ItemStore `json:"stores"`
}

type PagedItems struct {
	Items       []Item `json:"items"`
	TotalItems  int    `json:"totalItems"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}
