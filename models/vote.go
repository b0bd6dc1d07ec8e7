package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote links one voter to one candidate. Rows are immutable once created.
// The unique index on VoterID is what makes a concurrent double vote fail at
// the database instead of relying on the has-voted pre-check.
type Vote struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	VoterID     string    `json:"voterId" gorm:"column:voter_id;uniqueIndex;not null;size:36"`
	CandidateID string    `json:"candidateId" gorm:"column:candidate_id;index;not null;size:36"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
