package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mwestrum/liftlog/internal/db"
	"github.com/mwestrum/liftlog/internal/models"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "liftlog-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	app := fiber.New()
	RegisterRoutes(app, NewHandler(database, time.UTC))
	return app
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func createTestWorkout(t *testing.T, app *fiber.App, payload map[string]any) models.Workout {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/workouts/", payload)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 creating workout, got %d", response.StatusCode)
	}

	created := models.Workout{}
	decodeJSONBody(t, response, &created)
	return created
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	errorBody := struct {
		Error string `json:"error"`
	}{}
	decodeJSONBody(t, response, &errorBody)
	return errorBody.Error
}
