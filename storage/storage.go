package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jacintha05/ElectoVote/models"
)

// Storage is the persistence surface for the voting system. Constructed once
// at startup and handed to each controller; there is no package-level
// database instance.
type Storage interface {
	// User operations
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error

	// Voter operations
	GetVoter(ctx context.Context, id string) (*models.Voter, error)
	GetVoterByVotingID(ctx context.Context, votingID string) (*models.Voter, error)
	CreateVoter(ctx context.Context, voter *models.Voter) error
	GetTotalVoters(ctx context.Context) (int64, error)

	// Candidate operations
	GetCandidate(ctx context.Context, id string) (*models.Candidate, error)
	GetCandidateByEmail(ctx context.Context, email string) (*models.Candidate, error)
	GetCandidateByEmailAndPhone(ctx context.Context, email, phone string) (*models.Candidate, error)
	CreateCandidate(ctx context.Context, candidate *models.Candidate) error
	GetAllCandidates(ctx context.Context) ([]models.Candidate, error)

	// Vote operations
	HasVoterVoted(ctx context.Context, voterID string) (bool, error)
	GetTotalVotes(ctx context.Context) (int64, error)
	CastVote(ctx context.Context, voterID, candidateID string) (*models.Vote, error)
}

type gormStorage struct {
	db *gorm.DB
}

func New(db *gorm.DB) Storage {
	return &gormStorage{db: db}
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Voter{},
		&models.Candidate{},
		&models.Vote{},
	)
}

// User operations

func (s *gormStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *gormStorage) UpsertUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Voter operations

func (s *gormStorage) GetVoter(ctx context.Context, id string) (*models.Voter, error) {
	var voter models.Voter
	if err := s.db.WithContext(ctx).First(&voter, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &voter, nil
}

func (s *gormStorage) GetVoterByVotingID(ctx context.Context, votingID string) (*models.Voter, error) {
	var voter models.Voter
	if err := s.db.WithContext(ctx).First(&voter, "voting_id = ?", votingID).Error; err != nil {
		return nil, translate(err)
	}
	return &voter, nil
}

func (s *gormStorage) CreateVoter(ctx context.Context, voter *models.Voter) error {
	if err := s.db.WithContext(ctx).Create(voter).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (s *gormStorage) GetTotalVoters(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Voter{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

// Candidate operations

func (s *gormStorage) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.WithContext(ctx).First(&candidate, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (s *gormStorage) GetCandidateByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.WithContext(ctx).First(&candidate, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (s *gormStorage) GetCandidateByEmailAndPhone(ctx context.Context, email, phone string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.WithContext(ctx).First(&candidate, "email = ? AND phone = ?", email, phone).Error; err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (s *gormStorage) CreateCandidate(ctx context.Context, candidate *models.Candidate) error {
	if err := s.db.WithContext(ctx).Create(candidate).Error; err != nil {
		return translate(err)
	}
	return nil
}

// GetAllCandidates returns candidates ranked by vote count; candidates with
// equal counts keep registration order.
func (s *gormStorage) GetAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := s.db.WithContext(ctx).
		Order("vote_count DESC, created_at ASC, id ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, translate(err)
	}
	return candidates, nil
}

// Vote operations

func (s *gormStorage) HasVoterVoted(ctx context.Context, voterID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Vote{}).
		Where("voter_id = ?", voterID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (s *gormStorage) GetTotalVotes(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Vote{}).Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

// CastVote records a vote for voterID exactly once. The vote insert, the
// candidate counter increment and the has-voted flag flip happen in one
// transaction. A second vote for the same voter, concurrent or not, hits the
// unique index on votes.voter_id and comes back as ErrAlreadyVoted. The
// counter update is a relative UPDATE so concurrent votes for the same
// candidate never lose an increment.
func (s *gormStorage) CastVote(ctx context.Context, voterID, candidateID string) (*models.Vote, error) {
	vote := &models.Vote{VoterID: voterID, CandidateID: candidateID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var voter models.Voter
		if err := tx.First(&voter, "id = ?", voterID).Error; err != nil {
			return translate(err)
		}
		var candidate models.Candidate
		if err := tx.First(&candidate, "id = ?", candidateID).Error; err != nil {
			return translate(err)
		}

		if err := tx.Create(vote).Error; err != nil {
			if isDuplicateErr(err) {
				return ErrAlreadyVoted
			}
			return err
		}

		if err := tx.Model(&models.Candidate{}).
			Where("id = ?", candidateID).
			UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1)).Error; err != nil {
			return err
		}

		return tx.Model(&models.Voter{}).
			Where("id = ?", voterID).
			Update("has_voted", true).Error
	})
	if err != nil {
		return nil, err
	}
	return vote, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isDuplicateErr(err):
		return ErrDuplicate
	}
	return err
}
