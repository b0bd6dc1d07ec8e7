package controllers_test

import (
	"net/http"
	"testing"
)

func TestAuthRegisterAndLogin(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doRequest(t, router, "POST", "/api/auth/register", map[string]string{
		"email":     "admin@example.com",
		"password":  "password123",
		"firstName": "Ad",
		"lastName":  "Min",
	}, nil)
	assertStatus(t, w, http.StatusOK)

	var registered struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &registered)
	if registered.Token == "" {
		t.Fatal("expected a token on registration")
	}

	w = doRequest(t, router, "POST", "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	}, nil)
	assertStatus(t, w, http.StatusOK)

	var loggedIn struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &loggedIn)
	if loggedIn.Token == "" {
		t.Fatal("expected a token on login")
	}

	w = doRequest(t, router, "GET", "/api/auth/user", nil, map[string]string{
		"Authorization": "Bearer " + loggedIn.Token,
	})
	assertStatus(t, w, http.StatusOK)

	var user struct {
		Email string `json:"email"`
	}
	decodeJSON(t, w, &user)
	if user.Email != "admin@example.com" {
		t.Errorf("unexpected user %q", user.Email)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	router, _, _ := newTestEnv(t)

	doRequest(t, router, "POST", "/api/auth/register", map[string]string{
		"email":    "admin@example.com",
		"password": "password123",
	}, nil)

	w := doRequest(t, router, "POST", "/api/auth/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password",
	}, nil)
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestAuthUserRequiresToken(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doRequest(t, router, "GET", "/api/auth/user", nil, nil)
	assertStatus(t, w, http.StatusUnauthorized)

	w = doRequest(t, router, "GET", "/api/auth/user", nil, map[string]string{
		"Authorization": "Bearer not-a-token",
	})
	assertStatus(t, w, http.StatusUnauthorized)
}

func TestSystemEndpoints(t *testing.T) {
	router, _, _ := newTestEnv(t)

	w := doRequest(t, router, "GET", "/api/system/health", nil, nil)
	assertStatus(t, w, http.StatusOK)

	w = doRequest(t, router, "GET", "/api/system/info", nil, nil)
	assertStatus(t, w, http.StatusUnauthorized)

	w = doRequest(t, router, "GET", "/api/system/info?key=test-system-key", nil, nil)
	assertStatus(t, w, http.StatusOK)
}
