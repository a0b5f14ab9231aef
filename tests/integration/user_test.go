package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/response"
)

func TestRegisterAndLogin(t *testing.T) {
	registerUser(t, "alice", "student", map[string]any{
		"school": "MIT",
		"major":  "CS",
	})

	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"username": "alice",
		"password": "123456",
	}, http.StatusOK)

	var result response.TokenResponse
	decodeJSON(t, resp, &result)
	require.Equal(t, "alice", result.Username)
	require.Equal(t, "student", result.Role)
	require.NotEmpty(t, result.Token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	registerUser(t, "dup", "student", nil)

	doRequest(t, "POST", "/register", "", map[string]any{
		"username": "dup",
		"password": "123456",
		"email":    "dup2@test.com",
		"role":     "student",
	}, http.StatusConflict)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	doRequest(t, "POST", "/register", "", map[string]any{
		"username": "sneaky",
		"password": "123456",
		"email":    "sneaky@test.com",
		"role":     "admin",
	}, http.StatusBadRequest)
}

func TestLoginWrongPassword(t *testing.T) {
	registerUser(t, "carol", "entrepreneur", nil)
	doRequest(t, "POST", "/login", "", map[string]string{
		"username": "carol",
		"password": "wrong",
	}, http.StatusForbidden)
}

func TestListUsersRequiresToken(t *testing.T) {
	doRequest(t, "GET", "/users", "", nil, http.StatusUnauthorized)
}

func TestListAvailableStudents(t *testing.T) {
	registerUser(t, "dave", "student", map[string]any{"school": "NTU"})
	token, _ := loginUser(t, "dave", "123456")

	resp := doRequest(t, "GET", "/students?available=true", token, nil, http.StatusOK)

	var students []models.Student
	decodeJSON(t, resp, &students)
	require.NotEmpty(t, students)
	for _, s := range students {
		require.True(t, s.Available)
	}
}

func TestUpdateOtherUserForbidden(t *testing.T) {
	registerUser(t, "erin", "student", nil)
	registerUser(t, "frank", "student", nil)
	erinToken, _ := loginUser(t, "erin", "123456")
	_, frankUID := loginUser(t, "frank", "123456")

	doRequest(t, "PUT", pathf("/users/%d", frankUID), erinToken, map[string]string{
		"full_name": "not yours",
	}, http.StatusForbidden)
}

func TestUpdateOwnProfile(t *testing.T) {
	registerUser(t, "gina", "student", nil)
	token, uid := loginUser(t, "gina", "123456")

	resp := doRequest(t, "PUT", pathf("/users/%d", uid), token, map[string]string{
		"full_name": "Gina Chen",
	}, http.StatusOK)

	var user models.User
	decodeJSON(t, resp, &user)
	require.Equal(t, "Gina Chen", user.FullName)
}
