package api

import (
	"net/http"
	"testing"
)

func TestRegisterCreatesAccountAndRejectsDuplicate(t *testing.T) {
	env := newTestEnv(t)
	credentials := map[string]any{"username": "farmer42", "password": "greenleaf7"}

	response := env.sendJSON(t, http.MethodPost, "/api/auth/register", credentials)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	if cookie := responseCookie(response.Cookies(), authCookieName); cookie != nil {
		t.Fatal("did not expect registration to start a session")
	}

	duplicate := env.sendJSON(t, http.MethodPost, "/api/auth/register", credentials)
	if duplicate.StatusCode != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", duplicate.StatusCode)
	}
	if message := readAPIError(t, duplicate.Body); message != "Username already exists." {
		t.Fatalf("unexpected error message %q", message)
	}

	users, err := env.accounts.ListUsers()
	if err != nil || len(users) != 1 {
		t.Fatalf("expected exactly one user, got %d (%v)", len(users), err)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	testCases := []struct {
		payload map[string]any
		message string
	}{
		{payload: map[string]any{"username": "", "password": "greenleaf7"}, message: "Invalid input."},
		{payload: map[string]any{"username": "a b", "password": "greenleaf7"}, message: "Username must be 3 to 32 letters, digits, dots, dashes or underscores."},
		{payload: map[string]any{"username": "farmer42", "password": "weakpass"}, message: "Password must be at least 8 characters and contain a letter and a digit."},
	}
	for _, testCase := range testCases {
		response := env.sendJSON(t, http.MethodPost, "/api/auth/register", testCase.payload)
		if response.StatusCode != http.StatusBadRequest {
			t.Fatalf("%v: expected status 400, got %d", testCase.payload, response.StatusCode)
		}
		if message := readAPIError(t, response.Body); message != testCase.message {
			t.Fatalf("%v: unexpected error %q", testCase.payload, message)
		}
	}
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "farmer42", "greenleaf7", false)

	wrongPassword := env.sendJSON(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "farmer42", "password": "wrongleaf7"})
	unknownUser := env.sendJSON(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "nobody", "password": "greenleaf7"})

	if wrongPassword.StatusCode != http.StatusUnauthorized || unknownUser.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", wrongPassword.StatusCode, unknownUser.StatusCode)
	}
	first := readAPIError(t, wrongPassword.Body)
	second := readAPIError(t, unknownUser.Body)
	if first != "Invalid username or password." || first != second {
		t.Fatalf("expected identical invalid credentials message, got %q and %q", first, second)
	}
}

func TestLoginSessionCookieAndMe(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "farmer42", "greenleaf7", false)

	cookie := env.login(t, "farmer42", "greenleaf7")
	if !cookie.HttpOnly {
		t.Fatal("expected HttpOnly auth cookie")
	}

	response := env.sendJSON(t, http.MethodGet, "/api/me", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	payload := struct {
		User struct {
			Username string `json:"username"`
			IsAdmin  bool   `json:"is_admin"`
		} `json:"user"`
	}{}
	decodeJSON(t, response.Body, &payload)
	if payload.User.Username != "farmer42" || payload.User.IsAdmin {
		t.Fatalf("unexpected user payload %#v", payload)
	}

	anonymous := env.sendJSON(t, http.MethodGet, "/api/me", nil)
	if anonymous.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without cookie, got %d", anonymous.StatusCode)
	}

	forged := env.sendJSON(t, http.MethodGet, "/api/me", nil, &http.Cookie{Name: authCookieName, Value: cookie.Value + "x"})
	if forged.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for tampered cookie, got %d", forged.StatusCode)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "farmer42", "greenleaf7", false)
	cookie := env.login(t, "farmer42", "greenleaf7")

	response := env.sendJSON(t, http.MethodPost, "/api/auth/logout", nil, cookie)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	cleared := responseCookie(response.Cookies(), authCookieName)
	if cleared == nil || cleared.Value != "" {
		t.Fatalf("expected cleared auth cookie, got %#v", cleared)
	}
}

func TestLoginRateLimitedAfterRepeatedFailures(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "farmer42", "greenleaf7", false)

	for attempt := 0; attempt < loginAttemptsLimit; attempt++ {
		response := env.sendJSON(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "farmer42", "password": "wrongleaf7"})
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt+1, response.StatusCode)
		}
	}

	blocked := env.sendJSON(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "farmer42", "password": "greenleaf7"})
	if blocked.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", blocked.StatusCode)
	}
	if blocked.Header.Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
