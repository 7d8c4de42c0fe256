package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	html "github.com/gofiber/template/html/v2"
	"golang.org/x/crypto/bcrypt"

	"balcao/internal/http/handlers"
	"balcao/internal/repos"
	"balcao/internal/services"
)

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// Seeded passwords must be stored hashed, never plaintext.
func TestPasswordsSeededAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hashes []string
	if err := db.Select(&hashes, `SELECT password_hash FROM users`); err != nil {
		t.Fatalf("select hashes: %v", err)
	}
	if len(hashes) != 5 {
		t.Fatalf("want 5 seeded users, got %d", len(hashes))
	}
	for _, h := range hashes {
		if strings.Contains(h, "admin123") || strings.Contains(h, "senha") {
			t.Fatalf("hash contains plaintext password")
		}
		if !strings.HasPrefix(h, "$2") {
			t.Fatalf("unexpected hash format: %s", h)
		}
	}
	var adminHash string
	if err := db.Get(&adminHash, `SELECT password_hash FROM users WHERE username='admin'`); err != nil {
		t.Fatal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte("admin123")); err != nil {
		t.Fatalf("seed hash does not validate known password: %v", err)
	}
}

func TestLoginSuccessFailAndThrottle(t *testing.T) {
	// Minimal app with the real login handler and per-route limiter
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}
	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	app.Get("/", authH.LoginForm)
	app.Post("/", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), authH.Login)

	// fetch csrf token
	respForm, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	csrfTok := extractCookie(respForm, "csrf_")
	if csrfTok == "" {
		t.Fatal("csrf token missing")
	}

	post := func(username, password string) (*http.Response, error) {
		form := strings.NewReader("csrf=" + csrfTok + "&username=" + username + "&password=" + password)
		req := httptest.NewRequest("POST", "/", form)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: csrfTok})
		return app.Test(req)
	}

	// unknown credential pair -> 401, no session bound
	respBad, err := post("user1", "errada")
	if err != nil {
		t.Fatal(err)
	}
	if respBad.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad creds, got %d", respBad.StatusCode)
	}
	if sid := extractCookie(respBad, "sid"); sid != "" {
		if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
			t.Fatalf("failed login must not bind a session, got user %s", u.Username)
		}
	}

	// good password -> redirect to /chat, session retrievable
	respGood, err := post("user1", "senha1")
	if err != nil {
		t.Fatal(err)
	}
	if respGood.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect on success, got %d", respGood.StatusCode)
	}
	if loc := respGood.Header.Get("Location"); loc != "/chat" {
		t.Fatalf("expected redirect to /chat, got %q", loc)
	}
	sid := extractCookie(respGood, "sid")
	if sid == "" {
		t.Fatal("sid cookie missing after login")
	}
	u, err := authSvc.CurrentUser(sid)
	if err != nil || u == nil || u.Username != "user1" {
		t.Fatalf("session not retrievable: %v %+v", err, u)
	}

	// throttle after 2 attempts (we already did 2; a third should 429)
	respThird, err := post("user1", "errada")
	if err != nil {
		t.Fatal(err)
	}
	if respThird.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after throttle, got %d", respThird.StatusCode)
	}
}
