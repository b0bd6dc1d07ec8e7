package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacintha05/ElectoVote/models"
	"github.com/jacintha05/ElectoVote/storage"
)

type VoterController struct {
	store storage.Storage
}

func NewVoterController(store storage.Storage) *VoterController {
	return &VoterController{store: store}
}

func (vc *VoterController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		VotingID string `json:"votingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": err.Error()})
		return
	}

	// Friendly check first; the unique index on voting_id is the authority
	// if two registrations race.
	if _, err := vc.store.GetVoterByVotingID(c.Request.Context(), input.VotingID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voting ID already registered"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		respondStorageError(c, err, "Failed to register voter")
		return
	}

	voter := models.Voter{
		Name:     input.Name,
		VotingID: input.VotingID,
	}
	if err := vc.store.CreateVoter(c.Request.Context(), &voter); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Voting ID already registered"})
			return
		}
		respondStorageError(c, err, "Failed to register voter")
		return
	}

	c.JSON(http.StatusOK, voter)
}

func (vc *VoterController) Login(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		VotingID string `json:"votingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.VotingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voting ID and name are required"})
		return
	}

	voter, err := vc.store.GetVoterByVotingID(c.Request.Context(), input.VotingID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		respondStorageError(c, err, "Failed to log in")
		return
	}

	// Plaintext, case-sensitive comparison, matching the registered name.
	if voter.Name != input.Name {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, voter)
}
