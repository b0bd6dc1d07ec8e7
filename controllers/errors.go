package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jacintha05/ElectoVote/storage"
)

// respondStorageError maps domain errors to their HTTP status. Anything
// unexpected is logged with full detail and surfaced as a generic 500.
func respondStorageError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, storage.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Already registered"})
	case errors.Is(err, storage.ErrAlreadyVoted):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voter has already cast their vote"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("storage operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
