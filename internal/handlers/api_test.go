package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"national-connect-backend/internal/handlers"
	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
	"national-connect-backend/internal/services"
	"national-connect-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// testAPI wires the full route table over fresh in-memory collections,
// mirroring the production router assembly.
type testAPI struct {
	router    http.Handler
	uploadDir string
	users     *repository.UserRepository
	conns     *repository.ConnectionRepository
	photos    *repository.PhotoRepository
	msgs      *repository.MessageRepository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	uploadDir := t.TempDir()
	uploadStorage, err := storage.New(uploadDir)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository()
	connRepo := repository.NewConnectionRepository()
	photoRepo := repository.NewPhotoRepository()
	msgRepo := repository.NewMessageRepository()

	ids := services.UUIDGenerator{}
	userService := services.NewUserService(userRepo, ids)
	connService := services.NewConnectionService(connRepo, userRepo, ids)
	photoService := services.NewPhotoService(photoRepo, userRepo, ids)
	msgService := services.NewMessageService(msgRepo, userRepo, ids)
	statsService := services.NewStatsService(userRepo, connRepo, photoRepo, msgRepo)

	userHandler := handlers.NewUserHandler(userService)
	connHandler := handlers.NewConnectionHandler(connService)
	photoHandler := handlers.NewPhotoHandler(photoService, uploadStorage)
	msgHandler := handlers.NewMessageHandler(msgService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/users/register", userHandler.Register)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Post("/frequency/connect", connHandler.Connect)
		r.Get("/connections/{userId}", connHandler.ListConnections)
		r.Post("/photos/upload", photoHandler.Upload)
		r.Get("/photos", photoHandler.ListPhotos)
		r.Post("/photos/{id}/like", photoHandler.Like)
		r.Post("/messages/send", msgHandler.Send)
		r.Get("/messages/{userId}", msgHandler.ListMessages)
		r.Get("/stats", statsHandler.GetStats)
	})

	return &testAPI{
		router:    r,
		uploadDir: uploadDir,
		users:     userRepo,
		conns:     connRepo,
		photos:    photoRepo,
		msgs:      msgRepo,
	}
}

// do performs a JSON request against the router
func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

// register creates a user through the API and returns the created record
func (a *testAPI) register(t *testing.T, name string) models.User {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/users/register", map[string]string{
		"name":  name,
		"state": "CA",
		"city":  "LA",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeBody[handlers.RegisterResponse](t, w)
	require.NotNil(t, resp.User)
	return *resp.User
}
