package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/venturemate/marketplace-go/models"
)

func TestCatalogCRUD(t *testing.T) {
	adminToken, _ := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "POST", "/catalog/services", adminToken, map[string]any{
		"name":        "Landing page design",
		"description": "One page, responsive",
		"price":       300,
	}, http.StatusCreated)
	var svc models.Service
	decodeJSON(t, resp, &svc)
	require.NotZero(t, svc.ID)

	// names are unique
	doRequest(t, "POST", "/catalog/services", adminToken, map[string]any{
		"name": "Landing page design",
	}, http.StatusConflict)

	// the listing is public
	resp = doRequest(t, "GET", "/catalog/services", "", nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Landing page design")

	doRequest(t, "DELETE", pathf("/catalog/services/%d", svc.ID), adminToken, nil, http.StatusOK)
}

func TestCatalogPackWithFeatures(t *testing.T) {
	adminToken, _ := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "POST", "/catalog/packs", adminToken, map[string]any{
		"name":     "Starter pack",
		"price":    900,
		"features": []string{"Logo", "Landing page", "3 revisions"},
	}, http.StatusCreated)
	var pack models.Pack
	decodeJSON(t, resp, &pack)
	require.NotZero(t, pack.ID)

	resp = doRequest(t, "GET", "/catalog/packs", "", nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "Starter pack")
	require.Contains(t, resp.Body.String(), "3 revisions")
}

func TestCatalogMutationsNeedAdmin(t *testing.T) {
	registerUser(t, "buyer", "entrepreneur", nil)
	token, _ := loginUser(t, "buyer", "123456")

	doRequest(t, "POST", "/catalog/services", token, map[string]any{
		"name": "nope",
	}, http.StatusForbidden)
}

func TestAuditTrailRecordsProjectWrites(t *testing.T) {
	registerUser(t, "founder6", "entrepreneur", nil)
	founderToken, _ := loginUser(t, "founder6", "123456")
	adminToken, _ := loginUser(t, "admin", "admin123")

	doRequest(t, "POST", "/projects", founderToken, map[string]any{
		"title": "Audited project",
	}, http.StatusCreated)

	resp := doRequest(t, "GET", "/audit/logs?resource_type=project&limit=100", adminToken, nil, http.StatusOK)
	var logs []models.AuditLog
	decodeJSON(t, resp, &logs)
	require.NotEmpty(t, logs)
}

func TestAuditNeedsAdmin(t *testing.T) {
	registerUser(t, "peeker", "student", nil)
	token, _ := loginUser(t, "peeker", "123456")
	doRequest(t, "GET", "/audit/logs", token, nil, http.StatusForbidden)
}
