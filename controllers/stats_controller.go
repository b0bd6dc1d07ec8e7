package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacintha05/ElectoVote/storage"
)

type StatsController struct {
	store storage.Storage
	// registeredVoters is the fixed baseline for the turnout figure.
	registeredVoters int
}

func NewStatsController(store storage.Storage, registeredVoters int) *StatsController {
	return &StatsController{store: store, registeredVoters: registeredVoters}
}

type candidateStats struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Symbol     string  `json:"symbol"`
	PartyName  string  `json:"partyName"`
	VoteCount  int     `json:"voteCount"`
	Percentage float64 `json:"percentage"`
}

// Get recomputes the live tally on every call; nothing is cached.
func (sc *StatsController) Get(c *gin.Context) {
	ctx := c.Request.Context()

	totalVotes, err := sc.store.GetTotalVotes(ctx)
	if err != nil {
		respondStorageError(c, err, "Failed to fetch statistics")
		return
	}
	candidates, err := sc.store.GetAllCandidates(ctx)
	if err != nil {
		respondStorageError(c, err, "Failed to fetch statistics")
		return
	}

	stats := make([]candidateStats, 0, len(candidates))
	for _, cand := range candidates {
		percentage := 0.0
		if totalVotes > 0 {
			percentage = round1(float64(cand.VoteCount) / float64(totalVotes) * 100)
		}
		stats = append(stats, candidateStats{
			ID:         cand.ID,
			Name:       cand.Name,
			Symbol:     cand.Symbol,
			PartyName:  cand.PartyName,
			VoteCount:  cand.VoteCount,
			Percentage: percentage,
		})
	}

	turnout := 0.0
	if sc.registeredVoters > 0 {
		turnout = round1(float64(totalVotes) / float64(sc.registeredVoters) * 100)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalVotes":       totalVotes,
		"totalCandidates":  len(candidates),
		"registeredVoters": sc.registeredVoters,
		"turnout":          turnout,
		"candidates":       stats,
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
