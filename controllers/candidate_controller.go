package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jacintha05/ElectoVote/models"
	"github.com/jacintha05/ElectoVote/storage"
)

type CandidateController struct {
	store storage.Storage
}

func NewCandidateController(store storage.Storage) *CandidateController {
	return &CandidateController{store: store}
}

func (cc *CandidateController) Register(c *gin.Context) {
	var input struct {
		Name      string `json:"name" binding:"required"`
		Age       int    `json:"age" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone" binding:"required"`
		Symbol    string `json:"symbol" binding:"required"`
		PartyName string `json:"partyName" binding:"required"`
		Motto     string `json:"motto" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": err.Error()})
		return
	}
	if input.Age < models.MinCandidateAge {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": "candidate must be at least 18 years old"})
		return
	}
	if !models.ValidSymbol(input.Symbol) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data", "errors": "unknown election symbol"})
		return
	}

	if _, err := cc.store.GetCandidateByEmail(c.Request.Context(), input.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		respondStorageError(c, err, "Failed to register candidate")
		return
	}

	candidate := models.Candidate{
		Name:      input.Name,
		Age:       input.Age,
		Email:     input.Email,
		Phone:     input.Phone,
		Symbol:    input.Symbol,
		PartyName: input.PartyName,
		Motto:     input.Motto,
	}
	if err := cc.store.CreateCandidate(c.Request.Context(), &candidate); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
			return
		}
		respondStorageError(c, err, "Failed to register candidate")
		return
	}

	c.JSON(http.StatusOK, candidate)
}

func (cc *CandidateController) Login(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and phone are required"})
		return
	}

	candidate, err := cc.store.GetCandidateByEmailAndPhone(c.Request.Context(), input.Email, input.Phone)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		respondStorageError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, candidate)
}

// List returns all candidates ranked by vote count.
func (cc *CandidateController) List(c *gin.Context) {
	candidates, err := cc.store.GetAllCandidates(c.Request.Context())
	if err != nil {
		respondStorageError(c, err, "Failed to fetch candidates")
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (cc *CandidateController) Get(c *gin.Context) {
	candidate, err := cc.store.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
			return
		}
		respondStorageError(c, err, "Failed to fetch candidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}
