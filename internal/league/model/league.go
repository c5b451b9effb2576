package model

import (
	"strings"
	"time"
)

// League represents a league entity in the system.
// Matches the leagues table schema.
type League struct {
	ID          string    `gorm:"primaryKey;column:id;type:varchar(36)"                   json:"_id"`
	Title       string    `gorm:"column:league_title;type:text;not null"                  json:"league_title"`
	Description string    `gorm:"column:league_description;type:text;not null"            json:"league_description"`
	Members     string    `gorm:"column:members;type:text;not null;default:''"            json:"members"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_leagues_created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"                              json:"-"`
}

// TableName specifies the table name for GORM.
func (League) TableName() string {
	return "leagues"
}

// HasMember reports whether email already appears in the members field.
// Members is free text, so this is a substring match.
func (l League) HasMember(email string) bool {
	return email != "" && l.Members != "" && strings.Contains(l.Members, email)
}
