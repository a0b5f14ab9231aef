package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/venturemate/marketplace-go/config"
	"github.com/venturemate/marketplace-go/db"
	"github.com/venturemate/marketplace-go/internal/testutils"
	"github.com/venturemate/marketplace-go/middleware"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/response"
	"github.com/venturemate/marketplace-go/routes"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var router *gin.Engine

// memStore keeps document bytes in memory so the document endpoints run
// without a MinIO container.
type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return data, nil
}

func (s *memStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	// Gin router
	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router, newMemStore())

	// registration never hands out the admin role, seed it directly
	seedAdmin("admin", "admin123")

	code := m.Run()
	os.Exit(code)
}

func seedAdmin(username, password string) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := models.User{
		Username: username,
		Password: string(hashed),
		Email:    username + "@test.com",
		Role:     models.RoleAdmin,
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		log.Fatalf("seed admin: %v", err)
	}
}

// --- Helper functions ---

// doRequest marshals body (if any) as JSON and runs the request through the
// router, asserting the status when expectStatus is non-zero.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func registerUser(t *testing.T, username, role string, extra map[string]any) {
	t.Helper()
	body := map[string]any{
		"username": username,
		"password": "123456",
		"email":    username + "@test.com",
		"role":     role,
	}
	for k, v := range extra {
		body[k] = v
	}
	doRequest(t, "POST", "/register", "", body, http.StatusCreated)
}

func loginUser(t *testing.T, username, password string) (string, uint) {
	t.Helper()
	resp := doRequest(t, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, http.StatusOK)

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token, result.UID
}

func pathf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
