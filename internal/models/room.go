package models

import "time"

// Room represents a physical classroom (sala) identified by number, block
// and floor.
type Room struct {
	ID         string    `db:"id" json:"id"`
	Numero     string    `db:"numero" json:"numero"`
	Bloco      string    `db:"bloco" json:"bloco"`
	Andar      int       `db:"andar" json:"andar"`
	Capacidade int       `db:"capacidade" json:"capacidade"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// RoomFilter defines filter criteria for listing rooms.
type RoomFilter struct {
	Bloco     string
	Andar     *int
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
