package models

import "github.com/uptrace/bun"

// db
type Question struct {
	bun.BaseModel `bun:"table:questions"`
	ID            int    `bun:"id,pk,autoincrement" json:"id"`
	Question      string `bun:"question" json:"question"`
	Answer        string `bun:"answer" json:"answer"`
	Category      int    `bun:"category" json:"category"`
	Difficulty    int    `bun:"difficulty" json:"difficulty"`
}
