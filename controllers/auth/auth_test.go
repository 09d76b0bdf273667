package authController_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"pitchhub/config"
	"pitchhub/database"
	"pitchhub/models"
	authRoutes "pitchhub/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		DBDriver:  "sqlite",
		DBName:    filepath.Join(t.TempDir(), "test.db"),
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}
	database.ConnectDb()

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func registerForm(username, password, confirm string) url.Values {
	return url.Values{
		"username":         {username},
		"password":         {password},
		"confirm_password": {confirm},
	}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == "session" && ck.Value != "" {
			return ck
		}
	}
	return nil
}

func flashMessage(t *testing.T, resp *http.Response) string {
	t.Helper()

	for _, ck := range resp.Cookies() {
		if ck.Name == "flash" && ck.Value != "" {
			message, err := url.QueryUnescape(ck.Value)
			require.NoError(t, err)
			return message
		}
	}
	return ""
}

func TestRegisterCreatesUserAndRedirects(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter22"))
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
	require.Equal(t, "Registration successful! Please log in.", flashMessage(t, resp))

	var user models.User
	require.NoError(t, database.Database.Db.Where("username = ?", "alice").First(&user).Error)

	// The stored credential is a hash, never the raw secret
	require.NotEqual(t, "hunter22", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("hunter22")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter22"))
	require.Equal(t, http.StatusFound, resp.StatusCode)

	resp = postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter22"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "Username already exists.")

	var count int64
	database.Database.Db.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestRegisterPasswordMismatchCreatesNoUser(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter23"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "Passwords do not match.")

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestLoginEstablishesSession(t *testing.T) {
	app := setupApp(t)

	postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter22"))

	resp := postForm(t, app, "/login", url.Values{
		"username": {"alice"},
		"password": {"hunter22"},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	require.Equal(t, "Login successful!", flashMessage(t, resp))
	require.NotNil(t, sessionCookie(resp))

	var attempt models.LoginTracking
	require.NoError(t, database.Database.Db.Where("username = ?", "alice").First(&attempt).Error)
	require.True(t, attempt.Success)
}

func TestLoginBadCredentialsLeavesNoSession(t *testing.T) {
	app := setupApp(t)

	postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter22"))

	resp := postForm(t, app, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "Invalid username or password.")
	require.Nil(t, sessionCookie(resp))
}

func TestLoginUnknownUser(t *testing.T) {
	app := setupApp(t)

	resp := postForm(t, app, "/login", url.Values{
		"username": {"ghost"},
		"password": {"whatever1"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "Invalid username or password.")
	require.Nil(t, sessionCookie(resp))
}

func TestHomeRequiresSession(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
	require.Equal(t, "You need to log in first.", flashMessage(t, resp))
}

func TestLogoutBehavesLikeNeverLoggedIn(t *testing.T) {
	app := setupApp(t)

	postForm(t, app, "/register", registerForm("alice", "hunter22", "hunter22"))
	resp := postForm(t, app, "/login", url.Values{
		"username": {"alice"},
		"password": {"hunter22"},
	})
	session := sessionCookie(resp)
	require.NotNil(t, session)

	// Logged-in home works
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(session)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout clears the session cookie
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(session)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
	require.Equal(t, "You have been logged out.", flashMessage(t, resp))

	// A request without the cookie is treated as never logged in
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}
