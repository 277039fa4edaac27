package model

import "time"

// CatalogItem is an assignable content entry (uploaded media or a composition).
type CatalogItem struct {
	ID        int         `db:"id"           json:"id"`
	Name      string      `db:"name"         json:"name"`
	Type      ContentType `db:"type"         json:"type"`
	URL       string      `db:"url"          json:"url"`
	CreatedAt time.Time   `db:"created_at"   json:"created_at"`
}
