// Description: Defines the Voter model and its fields.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Voter struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    *string   `json:"userId,omitempty" gorm:"size:36"`
	Name      string    `json:"name" gorm:"not null"`
	VotingID  string    `json:"votingId" gorm:"column:voting_id;uniqueIndex;not null"`
	HasVoted  bool      `json:"hasVoted" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}

func (v *Voter) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
