package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Election symbols a candidate can register under.
const (
	SymbolStar   = "star"
	SymbolSun    = "sun"
	SymbolTree   = "tree"
	SymbolDove   = "dove"
	SymbolShield = "shield"
	SymbolFlag   = "flag"
)

// MinCandidateAge is the minimum age to stand for election.
const MinCandidateAge = 18

type Candidate struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    *string   `json:"userId,omitempty" gorm:"size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Age       int       `json:"age" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Symbol    string    `json:"symbol" gorm:"not null"`
	PartyName string    `json:"partyName" gorm:"not null"`
	Motto     string    `json:"motto" gorm:"not null"`
	VoteCount int       `json:"voteCount" gorm:"default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ValidSymbol reports whether s is one of the fixed election symbols.
func ValidSymbol(s string) bool {
	switch s {
	case SymbolStar, SymbolSun, SymbolTree, SymbolDove, SymbolShield, SymbolFlag:
		return true
	}
	return false
}
