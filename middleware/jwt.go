package middleware

import (
	"fmt"
	"learnvilla/config"
	"learnvilla/session"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const sessionKey = "session"

// GenerateJWT issues a signed token carrying the session's role and subject id
func GenerateJWT(sess session.Session) (string, error) {
	claims := jwt.MapClaims{
		"subjectId": sess.SubjectID,
		"role":      sess.Role,
		"jti":       uuid.NewString(),
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// parseSession validates a bearer token and rebuilds the session it carries.
func parseSession(tokenString string) (session.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return session.Anonymous(), fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["subjectId"] == nil || claims["role"] == nil {
		return session.Anonymous(), fmt.Errorf("invalid token payload")
	}

	subjectID, ok := claims["subjectId"].(float64) // JWT numeric claims decode as float64
	if !ok {
		return session.Anonymous(), fmt.Errorf("invalid token payload")
	}
	role, ok := claims["role"].(string)
	if !ok || (role != session.RoleUser && role != session.RoleAdmin) {
		return session.Anonymous(), fmt.Errorf("invalid token payload")
	}

	return session.Session{Role: role, SubjectID: uint(subjectID)}, nil
}

// JWTMiddleware requires a valid bearer token and stores the resulting
// session in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	sess, err := parseSession(authHeader[len("Bearer "):])
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	c.Locals(sessionKey, sess)
	return c.Next()
}

// OptionalJWTMiddleware resolves a session when a valid bearer token is
// present and falls back to an anonymous session otherwise. Used on routes
// like the course detail page that serve both visitors and members.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if sess, err := parseSession(authHeader[len("Bearer "):]); err == nil {
			c.Locals(sessionKey, sess)
			return c.Next()
		}
	}
	c.Locals(sessionKey, session.Anonymous())
	return c.Next()
}

// SessionFromCtx returns the session established by the JWT middleware, or an
// anonymous session when none was set.
func SessionFromCtx(c *fiber.Ctx) session.Session {
	if sess, ok := c.Locals(sessionKey).(session.Session); ok {
		return sess
	}
	return session.Anonymous()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
