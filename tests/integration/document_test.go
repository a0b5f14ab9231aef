package integration

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/venturemate/marketplace-go/models"
)

func uploadFile(t *testing.T, token string, projectID uint, filename, content string, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", pathf("/projects/%d/documents", projectID), &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, expectStatus, w.Code, w.Body.String())
	return w
}

func TestDocumentUploadDownloadDelete(t *testing.T) {
	registerUser(t, "founder4", "entrepreneur", nil)
	founderToken, _ := loginUser(t, "founder4", "123456")

	resp := doRequest(t, "POST", "/projects", founderToken, map[string]any{
		"title": "Docs project",
	}, http.StatusCreated)
	var project models.Project
	decodeJSON(t, resp, &project)

	w := uploadFile(t, founderToken, project.PID, "brief.txt", "project brief", http.StatusCreated)
	var doc models.Document
	decodeJSON(t, w, &doc)
	require.Equal(t, "brief.txt", doc.Name)
	require.Equal(t, project.PID, doc.ProjectID)

	// listing shows the upload
	resp = doRequest(t, "GET", pathf("/projects/%d/documents", project.PID), founderToken, nil, http.StatusOK)
	var docs []models.Document
	decodeJSON(t, resp, &docs)
	require.Len(t, docs, 1)

	// download returns the original bytes
	resp = doRequest(t, "GET", pathf("/documents/%d", doc.DID), founderToken, nil, http.StatusOK)
	require.Equal(t, "project brief", resp.Body.String())

	// delete, then the listing is empty
	doRequest(t, "DELETE", pathf("/documents/%d", doc.DID), founderToken, nil, http.StatusOK)
	resp = doRequest(t, "GET", pathf("/projects/%d/documents", project.PID), founderToken, nil, http.StatusOK)
	docs = nil
	decodeJSON(t, resp, &docs)
	require.Empty(t, docs)
}

func TestDocumentUploadUnknownProject(t *testing.T) {
	registerUser(t, "founder5", "entrepreneur", nil)
	founderToken, _ := loginUser(t, "founder5", "123456")

	uploadFile(t, founderToken, 99999, "ghost.txt", "x", http.StatusNotFound)
}
