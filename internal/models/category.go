package models

import "github.com/uptrace/bun"

// db
type Category struct {
	bun.BaseModel `bun:"table:categories"`
	ID            int    `bun:"id,pk,autoincrement" json:"id"`
	Type          string `bun:"type" json:"type"`
}
