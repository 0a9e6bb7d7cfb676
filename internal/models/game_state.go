package models

import (
	"time"
)

// Game toggle values
const (
	GameOn  = "ON"
	GameOff = "OFF"
)

// GameState is the single process-wide toggle gating game entry and
// question authoring. Exactly one row exists.
type GameState struct {
	ID        uint      `gorm:"primaryKey"`
	State     string    `gorm:"type:varchar(3);default:'OFF';not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (GameState) TableName() string {
	return "game_state"
}
