package controllers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jacintha05/ElectoVote/models"
	"github.com/jacintha05/ElectoVote/testutil"
)

func TestCastVote(t *testing.T) {
	router, store, mailer := newTestEnv(t)

	voter := testutil.CreateTestVoter(t, store, "Ada", "V1")
	candidate := testutil.CreateTestCandidate(t, store, "Grace", "grace@example.com")

	w := doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": voter.ID, "candidateId": candidate.ID}, nil)
	assertStatus(t, w, http.StatusOK)

	var resp struct {
		Message   string      `json:"message"`
		Vote      models.Vote `json:"vote"`
		EmailSent bool        `json:"emailSent"`
	}
	decodeJSON(t, w, &resp)
	if resp.Message != "Vote cast successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if !resp.EmailSent {
		t.Error("expected emailSent true")
	}
	if resp.Vote.VoterID != voter.ID || resp.Vote.CandidateID != candidate.ID {
		t.Errorf("vote references wrong records: %+v", resp.Vote)
	}

	// Notification is dispatched off the request path; wait for it.
	select {
	case n := <-mailer.sent:
		if n.candidateName != "Grace" || n.candidateEmail != "grace@example.com" || n.voterName != "Ada" {
			t.Errorf("unexpected notification %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Error("vote notification was never dispatched")
	}

	updated, err := store.GetCandidate(context.Background(), candidate.ID)
	if err != nil {
		t.Fatalf("GetCandidate failed: %v", err)
	}
	if updated.VoteCount != 1 {
		t.Errorf("expected vote count 1, got %d", updated.VoteCount)
	}
}

func TestCastVoteTwiceRejected(t *testing.T) {
	router, store, _ := newTestEnv(t)

	voter := testutil.CreateTestVoter(t, store, "Ada", "V1")
	candidate := testutil.CreateTestCandidate(t, store, "Grace", "grace@example.com")

	w := doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": voter.ID, "candidateId": candidate.ID}, nil)
	assertStatus(t, w, http.StatusOK)

	w = doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": voter.ID, "candidateId": candidate.ID}, nil)
	assertStatus(t, w, http.StatusBadRequest)

	var resp struct {
		Message string `json:"message"`
	}
	decodeJSON(t, w, &resp)
	if resp.Message != "Voter has already cast their vote" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestCastVoteMissingFields(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doRequest(t, router, "POST", "/api/votes", map[string]string{"voterId": "x"}, nil)
	assertStatus(t, w, http.StatusBadRequest)

	w = doRequest(t, router, "POST", "/api/votes", map[string]string{}, nil)
	assertStatus(t, w, http.StatusBadRequest)
}

func TestCastVoteUnknownRecords(t *testing.T) {
	router, store, _ := newTestEnv(t)

	voter := testutil.CreateTestVoter(t, store, "Ada", "V1")
	candidate := testutil.CreateTestCandidate(t, store, "Grace", "grace@example.com")

	w := doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": "missing", "candidateId": candidate.ID}, nil)
	assertStatus(t, w, http.StatusNotFound)

	w = doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": voter.ID, "candidateId": "missing"}, nil)
	assertStatus(t, w, http.StatusNotFound)
}

// Full journey from the ballot box side: register, log in, vote once,
// get turned away on the second attempt.
func TestVoterJourney(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doRequest(t, router, "POST", "/api/voters/register",
		map[string]string{"name": "Ada", "votingId": "V1"}, nil)
	assertStatus(t, w, http.StatusOK)
	var voter models.Voter
	decodeJSON(t, w, &voter)

	w = doRequest(t, router, "POST", "/api/candidates/register", candidatePayload("c1@example.com"), nil)
	assertStatus(t, w, http.StatusOK)
	var candidate models.Candidate
	decodeJSON(t, w, &candidate)

	w = doRequest(t, router, "POST", "/api/voters/login",
		map[string]string{"name": "Ada", "votingId": "V1"}, nil)
	assertStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &voter)
	if voter.HasVoted {
		t.Fatal("expected hasVoted false before voting")
	}

	w = doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": voter.ID, "candidateId": candidate.ID}, nil)
	assertStatus(t, w, http.StatusOK)

	w = doRequest(t, router, "POST", "/api/voters/login",
		map[string]string{"name": "Ada", "votingId": "V1"}, nil)
	assertStatus(t, w, http.StatusOK)
	decodeJSON(t, w, &voter)
	if !voter.HasVoted {
		t.Error("expected hasVoted true after voting")
	}

	w = doRequest(t, router, "POST", "/api/votes",
		map[string]string{"voterId": voter.ID, "candidateId": candidate.ID}, nil)
	assertStatus(t, w, http.StatusBadRequest)
}
