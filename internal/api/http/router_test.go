package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/aniq93/Customer-Support-Agent/internal/api/http"
	"github.com/aniq93/Customer-Support-Agent/internal/api/http/handlers"
	"github.com/aniq93/Customer-Support-Agent/internal/repository/repositorytest"
	"github.com/aniq93/Customer-Support-Agent/internal/service"
)

type testEnv struct {
	app     *fiber.App
	users   *repositorytest.UserRepo
	tickets *repositorytest.TicketRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userRepo := repositorytest.NewUserRepo()
	ticketRepo := repositorytest.NewTicketRepo(userRepo)
	commentRepo := repositorytest.NewCommentRepo()

	userService := service.NewUserService(userRepo)
	ticketService := service.NewTicketService(ticketRepo)
	commentService := service.NewCommentService(commentRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler("test", "dev", nil, nil),
		Users:    handlers.NewUsersHandler(userService),
		Tickets:  handlers.NewTicketsHandler(ticketService, userService),
		Comments: handlers.NewCommentsHandler(commentService),
	})

	return &testEnv{app: app, users: userRepo, tickets: ticketRepo}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, payload
}

func decode[T any](t *testing.T, payload []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		t.Fatalf("decode %s: %v", payload, err)
	}
	return out
}

func errorCode(t *testing.T, payload []byte) string {
	t.Helper()
	body := decode[map[string]map[string]any](t, payload)
	code, _ := body["error"]["code"].(string)
	return code
}

func (e *testEnv) createUser(t *testing.T, email, name string) map[string]any {
	t.Helper()
	status, payload := e.do(t, http.MethodPost, "/users/", map[string]any{
		"email": email,
		"name":  name,
	})
	if status != http.StatusOK {
		t.Fatalf("create user: status %d body %s", status, payload)
	}
	return decode[map[string]any](t, payload)
}

func TestCreateUserEndpoint(t *testing.T) {
	env := newTestEnv(t)

	user := env.createUser(t, "alice@example.com", "Alice")
	if user["email"] != "alice@example.com" || user["name"] != "Alice" {
		t.Errorf("unexpected body: %v", user)
	}
	if user["role"] != "customer" {
		t.Errorf("expected default role customer, got %v", user["role"])
	}
	if user["id"] == nil || user["created_at"] == nil {
		t.Errorf("missing server-assigned fields: %v", user)
	}

	// fresh id usable immediately for both lookups
	id := int64(user["id"].(float64))
	status, payload := env.do(t, http.MethodGet, "/users/1", nil)
	if status != http.StatusOK || id != 1 {
		t.Errorf("lookup by id: status %d body %s", status, payload)
	}
	status, _ = env.do(t, http.MethodGet, "/users/email/alice@example.com", nil)
	if status != http.StatusOK {
		t.Errorf("lookup by email: status %d", status)
	}
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"name": "Alice"}},
		{"missing name", map[string]any{"email": "alice@example.com"}},
		{"malformed email", map[string]any{"email": "not-an-email", "name": "Alice"}},
		{"unknown role", map[string]any{"email": "alice@example.com", "name": "Alice", "role": "superuser"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := env.do(t, http.MethodPost, "/users/", tc.body)
			if status != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", status, payload)
			}
			if code := errorCode(t, payload); code != "VALIDATION_FAILED" {
				t.Errorf("expected VALIDATION_FAILED, got %q", code)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "dup@example.com", "First")

	status, payload := env.do(t, http.MethodPost, "/users/", map[string]any{
		"email": "dup@example.com",
		"name":  "Second",
	})
	if status != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", status, payload)
	}
	if code := errorCode(t, payload); code != "CONFLICT" {
		t.Errorf("expected CONFLICT, got %q", code)
	}
}

func TestGetUserAbsent(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodGet, "/users/999", nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
	if code := errorCode(t, payload); code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", code)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "carol@example.com", "Carol")

	status, payload := env.do(t, http.MethodPut, "/users/1", map[string]any{
		"name": "Carol Updated",
		"role": "agent",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, payload)
	}
	user := decode[map[string]any](t, payload)
	if user["name"] != "Carol Updated" || user["role"] != "agent" {
		t.Errorf("patch not applied: %v", user)
	}
	if user["email"] != "carol@example.com" {
		t.Errorf("email should be untouched: %v", user)
	}
}

func TestUpdateUserAbsent(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPut, "/users/77", map[string]any{"name": "Ghost"})
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestListUsersPagination(t *testing.T) {
	env := newTestEnv(t)
	emails := []string{"a@example.com", "b@example.com", "c@example.com", "d@example.com", "e@example.com"}
	for i, email := range emails {
		env.createUser(t, email, "User "+string(rune('A'+i)))
	}

	status, payload := env.do(t, http.MethodGet, "/users/?skip=0&limit=3", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	page := decode[[]map[string]any](t, payload)
	if len(page) != 3 {
		t.Fatalf("expected 3 users, got %d", len(page))
	}
	for i, user := range page {
		if user["email"] != emails[i] {
			t.Errorf("position %d: expected %q, got %v", i, emails[i], user["email"])
		}
	}

	status, payload = env.do(t, http.MethodGet, "/users/?skip=2&limit=3", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	page = decode[[]map[string]any](t, payload)
	if len(page) != 3 || page[0]["email"] != emails[2] {
		t.Errorf("unexpected offset page: %v", page)
	}
}

func TestCreateTicketRequesterMustExist(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/tickets/", map[string]any{
		"title":        "No requester",
		"requester_id": 12345,
	})
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", status, payload)
	}
	if code := errorCode(t, payload); code != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND, got %q", code)
	}
	// rejected before any record was persisted
	if env.tickets.Len() != 0 {
		t.Errorf("ticket was persisted despite unresolved requester")
	}
}

func TestCreateTicketDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "requester@example.com", "Requester")

	status, payload := env.do(t, http.MethodPost, "/tickets/", map[string]any{
		"title":        "Broken keyboard",
		"requester_id": 1,
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, payload)
	}
	ticket := decode[map[string]any](t, payload)
	if ticket["status"] != "open" || ticket["priority"] != "medium" {
		t.Errorf("unexpected defaults: %v", ticket)
	}
	if ticket["assignee_id"] != nil {
		t.Errorf("expected null assignee, got %v", ticket["assignee_id"])
	}
	if ticket["created_at"] == nil || ticket["updated_at"] == nil {
		t.Errorf("missing timestamps: %v", ticket)
	}
}

func TestUpdateTicketStatusOnly(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "requester@example.com", "Requester")
	status, payload := env.do(t, http.MethodPost, "/tickets/", map[string]any{
		"title":        "Slow laptop",
		"description":  "boot takes five minutes",
		"priority":     "high",
		"requester_id": 1,
	})
	if status != http.StatusOK {
		t.Fatalf("create ticket: %d %s", status, payload)
	}

	status, payload = env.do(t, http.MethodPut, "/tickets/1", map[string]any{
		"status": "in_progress",
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, payload)
	}
	ticket := decode[map[string]any](t, payload)
	if ticket["status"] != "in_progress" {
		t.Errorf("status not applied: %v", ticket)
	}
	if ticket["title"] != "Slow laptop" || ticket["description"] != "boot takes five minutes" || ticket["priority"] != "high" {
		t.Errorf("fields not in patch must be untouched: %v", ticket)
	}
}

func TestUpdateTicketValidation(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "requester@example.com", "Requester")
	env.do(t, http.MethodPost, "/tickets/", map[string]any{"title": "t", "requester_id": 1})

	status, payload := env.do(t, http.MethodPut, "/tickets/1", map[string]any{
		"status": "reopened",
	})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for enum violation, got %d: %s", status, payload)
	}
}

func TestUpdateTicketAbsent(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPut, "/tickets/55", map[string]any{"status": "closed"})
	if status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestListTicketsByUser(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "one@example.com", "One")
	env.createUser(t, "two@example.com", "Two")
	env.do(t, http.MethodPost, "/tickets/", map[string]any{"title": "mine", "requester_id": 1})
	env.do(t, http.MethodPost, "/tickets/", map[string]any{"title": "theirs", "requester_id": 2})
	env.do(t, http.MethodPost, "/tickets/", map[string]any{"title": "also mine", "requester_id": 1})

	status, payload := env.do(t, http.MethodGet, "/tickets/user/1", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	tickets := decode[[]map[string]any](t, payload)
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	for _, ticket := range tickets {
		if ticket["requester_id"] != float64(1) {
			t.Errorf("foreign ticket in result: %v", ticket)
		}
	}

	status, _ = env.do(t, http.MethodGet, "/tickets/user/999", nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown user, got %d", status)
	}
}

func TestGetTicketWithRequesterEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "req@example.com", "Req User")
	env.do(t, http.MethodPost, "/tickets/", map[string]any{"title": "joined", "requester_id": 1})

	status, payload := env.do(t, http.MethodGet, "/tickets/1/requester", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, payload)
	}
	body := decode[map[string]any](t, payload)
	if body["requester_name"] != "Req User" || body["requester_email"] != "req@example.com" {
		t.Errorf("requester fields missing: %v", body)
	}
	if body["title"] != "joined" {
		t.Errorf("ticket fields missing: %v", body)
	}
}

func TestCreateCommentEndpoint(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/comments/", map[string]any{
		"body":        "Looking into it.",
		"is_internal": true,
		"ticket_id":   4,
		"author_id":   2,
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, payload)
	}
	comment := decode[map[string]any](t, payload)
	if comment["body"] != "Looking into it." || comment["is_internal"] != true {
		t.Errorf("unexpected body: %v", comment)
	}

	status, payload = env.do(t, http.MethodPost, "/comments/", map[string]any{
		"ticket_id": 4,
		"author_id": 2,
	})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for missing body, got %d: %s", status, payload)
	}
}

func TestHealthLive(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodGet, "/health/live", nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	body := decode[map[string]any](t, payload)
	if body["status"] != "alive" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestHealthReadyWithoutDependencies(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodGet, "/health/ready", nil)
	if status != http.StatusServiceUnavailable {
		t.Errorf("expected 503 with no postgres/redis, got %d", status)
	}
}
