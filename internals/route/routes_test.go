package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	seeds "hrms_backend/internals/seeds"
)

const testSecret = "routes-test-secret"

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = testSecret
	configs.TokenExpireMinutes = 60

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seeds.Run(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app, db)
	return app, db
}

func request(t *testing.T, app *fiber.App, method, target, token, body string) (*http.Response, []byte) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, raw := request(t, app, http.MethodPost, "/api/auth/login", "",
		`{"username":"admin","password":"admin123"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if out.TokenType != "bearer" || out.AccessToken == "" {
		t.Fatalf("unexpected token response: %+v", out)
	}
	return out.AccessToken
}

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "admin", "exp": exp.Unix()}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app, _ := setupApp(t)

	cases := []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nosuchuser","password":"admin123"}`,
	}
	var bodies []string
	for _, body := range cases {
		resp, raw := request(t, app, http.MethodPost, "/api/auth/login", "", body)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("body %s: expected 401, got %d", body, resp.StatusCode)
		}
		bodies = append(bodies, string(raw))
	}
	// same answer whether the username exists or not
	if bodies[0] != bodies[1] {
		t.Errorf("login failure responses differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestAuthGateUniformRejection(t *testing.T) {
	app, db := setupApp(t)

	endpoints := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/employees", ""},
		{http.MethodGet, "/api/employees/departments", ""},
		{http.MethodPost, "/api/employees", `{"id":"E1","full_name":"Ann","email":"ann@x.com","department":"Eng"}`},
		{http.MethodPut, "/api/employees/E1", `{"department":"Ops"}`},
		{http.MethodDelete, "/api/employees/E1", ""},
		{http.MethodGet, "/api/attendance", ""},
		{http.MethodPost, "/api/attendance", `{"employee_id":"E1","date":"2024-01-01","status":"Present"}`},
		{http.MethodGet, "/api/attendance/dashboard", ""},
	}
	tokens := map[string]string{
		"missing":       "",
		"malformed":     "not.a.token",
		"expired":       signToken(t, testSecret, time.Now().Add(-time.Hour)),
		"bad signature": signToken(t, "some-other-secret", time.Now().Add(time.Hour)),
	}

	for kind, token := range tokens {
		for _, ep := range endpoints {
			resp, _ := request(t, app, ep.method, ep.path, token, ep.body)
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("%s token on %s %s: expected 401, got %d", kind, ep.method, ep.path, resp.StatusCode)
			}
		}
	}

	// none of the handlers ran
	var employees, attendance int64
	db.Table("employees").Count(&employees)
	db.Table("attendance").Count(&attendance)
	if employees != 0 || attendance != 0 {
		t.Fatalf("rejected requests mutated state: employees=%d attendance=%d", employees, attendance)
	}
}

func TestTokenAcceptedOnEveryProtectedEndpoint(t *testing.T) {
	app, _ := setupApp(t)
	token := login(t, app)

	resp, raw := request(t, app, http.MethodPost, "/api/employees", token,
		`{"id":"E1","full_name":"Ann Lee","email":"ann@x.com","department":"Eng"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, raw)
	}

	gets := []string{
		"/api/employees",
		"/api/employees/departments",
		"/api/attendance",
		"/api/attendance/dashboard",
	}
	for _, path := range gets {
		resp, _ := request(t, app, http.MethodGet, path, token, "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, resp.StatusCode)
		}
	}
}

// The full walkthrough: create employee, mark, re-mark, verify single record.
func TestAttendanceScenario(t *testing.T) {
	app, _ := setupApp(t)
	token := login(t, app)

	resp, raw := request(t, app, http.MethodPost, "/api/employees", token,
		`{"id":"E1","full_name":"Ann Lee","email":"ann@x.com","department":"Eng"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create employee: expected 201, got %d: %s", resp.StatusCode, raw)
	}

	resp, raw = request(t, app, http.MethodPost, "/api/attendance", token,
		`{"employee_id":"E1","date":"2024-01-01","status":"Present"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("mark: expected 201, got %d: %s", resp.StatusCode, raw)
	}
	var msg map[string]string
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg["message"] != "Attendance marked successfully" {
		t.Fatalf("unexpected message %q", msg["message"])
	}

	resp, raw = request(t, app, http.MethodPost, "/api/attendance", token,
		`{"employee_id":"E1","date":"2024-01-01","status":"Absent"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("re-mark: expected 200, got %d: %s", resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg["message"] != "Attendance updated" {
		t.Fatalf("unexpected message %q", msg["message"])
	}

	_, raw = request(t, app, http.MethodGet, "/api/attendance?employee_id=E1&date=2024-01-01", token, "")
	var list []map[string]any
	if err := json.Unmarshal(raw, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0]["status"] != "Absent" {
		t.Fatalf("expected exactly one Absent record, got %v", list)
	}
}

func TestLandingAndHealthArePublic(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := request(t, app, http.MethodGet, "/", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("landing: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(raw), "HRMS Lite") {
		t.Fatal("landing page content missing")
	}

	resp, _ = request(t, app, http.MethodGet, "/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", resp.StatusCode)
	}
}
