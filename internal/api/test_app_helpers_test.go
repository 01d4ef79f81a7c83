package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/plantdoc/internal/classifier"
	"github.com/terraincognita07/plantdoc/internal/filestore"
	"github.com/terraincognita07/plantdoc/internal/i18n"
	"github.com/terraincognita07/plantdoc/internal/plantdoctor"
	"github.com/terraincognita07/plantdoc/internal/services"
	"github.com/terraincognita07/plantdoc/internal/uploads"
)

type stubClassifier struct {
	index int
	err   error
}

func (stub *stubClassifier) Classify(context.Context, classifier.Tensor) (int, error) {
	return stub.index, stub.err
}

type testEnv struct {
	app        *fiber.App
	accounts   *services.AccountService
	classifier *stubClassifier
	dataDir    string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}
	knowledgePath := filepath.Join(filepath.Dir(testFile), "..", "..", "data", "plant_diseases.json")

	knowledge, err := plantdoctor.LoadKnowledgeBase(knowledgePath, nil)
	if err != nil {
		t.Fatalf("load knowledge base: %v", err)
	}
	i18nManager, err := i18n.NewEmbeddedManager("en")
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	dataDir := t.TempDir()
	repositories := filestore.NewRepositories(dataDir)
	stub := &stubClassifier{}
	accounts := services.NewAccountService(repositories.Users)

	handler, err := NewHandler(Dependencies{
		Accounts:    accounts,
		Chats:       services.NewChatService(repositories.Chats, plantdoctor.NewResolver(knowledge, nil), nil),
		Predictions: services.NewPredictionService(repositories.Predictions, stub, uploads.NewLocalArchive(filepath.Join(dataDir, "uploads")), nil),
		Admin:       services.NewAdminService(repositories.Users, repositories.Predictions, repositories.Chats),
		Knowledge:   knowledge,
		I18n:        i18nManager,
		SecretKey:   "test-secret-key-with-enough-length-0123",
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return testEnv{app: app, accounts: accounts, classifier: stub, dataDir: dataDir}
}

func (env testEnv) send(t *testing.T, request *http.Request, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	for _, cookie := range cookies {
		if cookie != nil {
			request.AddCookie(cookie)
		}
	}
	response, err := env.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	t.Cleanup(func() { _ = response.Body.Close() })
	return response
}

func (env testEnv) sendJSON(t *testing.T, method string, path string, payload any, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	return env.send(t, request, cookies...)
}

func (env testEnv) sendImage(t *testing.T, filename string, data []byte, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/predictions", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())
	return env.send(t, request, cookies...)
}

func (env testEnv) createUser(t *testing.T, username string, password string, isAdmin bool) {
	t.Helper()
	if _, err := env.accounts.Register(username, password, isAdmin); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
}

func (env testEnv) login(t *testing.T, username string, password string) *http.Cookie {
	t.Helper()
	response := env.sendJSON(t, http.MethodPost, "/api/auth/login", map[string]any{
		"username": username,
		"password": password,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login %s: expected status 200, got %d", username, response.StatusCode)
	}
	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("login %s: expected auth cookie", username)
	}
	return cookie
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]any{}
	decodeJSON(t, body, &payload)
	message, _ := payload["error"].(string)
	return message
}

func decodeJSON(t *testing.T, body io.Reader, target any) {
	t.Helper()
	content, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(content, target); err != nil {
		t.Fatalf("decode response body %q: %v", content, err)
	}
}
