package middleware

import (
	"fmt"
	"time"

	"pitchhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const sessionCookie = "session"

const sessionTTL = 24 * time.Hour

// GenerateSessionToken signs a session token carrying the logged-in username
func GenerateSessionToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"jti":      uuid.NewString(),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// SetSessionCookie establishes the session on the client
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie destroys the session on the client
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// SessionUser returns the username carried by a valid session cookie
func SessionUser(c *fiber.Ctx) (string, bool) {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["username"] == nil {
		return "", false
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// RequireSession guards protected routes. Unauthenticated callers are sent to
// the login page with a notice; authenticated ones pass through with the
// username stored in request locals.
func RequireSession(c *fiber.Ctx) error {
	username, ok := SessionUser(c)
	if !ok {
		SetFlash(c, "You need to log in first.")
		return c.Redirect("/login", fiber.StatusFound)
	}

	c.Locals("username", username)
	return c.Next()
}
