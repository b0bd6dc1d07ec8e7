package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacintha05/ElectoVote/email"
	"github.com/jacintha05/ElectoVote/pkg/async"
	"github.com/jacintha05/ElectoVote/storage"
)

type VoteController struct {
	store  storage.Storage
	mailer email.Mailer
}

func NewVoteController(store storage.Storage, mailer email.Mailer) *VoteController {
	return &VoteController{store: store, mailer: mailer}
}

// Cast handles POST /api/votes. The storage layer applies the vote as one
// transaction; the candidate notification is dispatched afterwards and never
// affects the response.
func (vc *VoteController) Cast(c *gin.Context) {
	var input struct {
		VoterID     string `json:"voterId"`
		CandidateID string `json:"candidateId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.VoterID == "" || input.CandidateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voter ID and Candidate ID are required"})
		return
	}

	ctx := c.Request.Context()

	voter, err := vc.store.GetVoter(ctx, input.VoterID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		respondStorageError(c, err, "Failed to cast vote")
		return
	}
	candidate, candErr := vc.store.GetCandidate(ctx, input.CandidateID)
	if candErr != nil && !errors.Is(candErr, storage.ErrNotFound) {
		respondStorageError(c, candErr, "Failed to cast vote")
		return
	}
	if voter == nil || candidate == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Voter or candidate not found"})
		return
	}

	// Friendly rejection on the common path; under a race the unique index
	// inside CastVote has the final say.
	hasVoted, err := vc.store.HasVoterVoted(ctx, input.VoterID)
	if err != nil {
		respondStorageError(c, err, "Failed to cast vote")
		return
	}
	if hasVoted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voter has already cast their vote"})
		return
	}

	vote, err := vc.store.CastVote(ctx, input.VoterID, input.CandidateID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyVoted):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Voter has already cast their vote"})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Voter or candidate not found"})
		default:
			respondStorageError(c, err, "Failed to cast vote")
		}
		return
	}

	candidateName, candidateEmail, voterName := candidate.Name, candidate.Email, voter.Name
	async.Go("vote-notification", func() error {
		return vc.mailer.SendVoteNotification(candidateName, candidateEmail, voterName)
	})

	c.JSON(http.StatusOK, gin.H{
		"message":   "Vote cast successfully",
		"vote":      vote,
		"emailSent": true,
	})
}
