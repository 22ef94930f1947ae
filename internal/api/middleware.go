package api

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/saad710/shop-api/internal/jwt"
	"github.com/saad710/shop-api/internal/model"
	"github.com/saad710/shop-api/internal/repository"
)

var (
	httpRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of http request",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)
)

const localAuthUser = "authUser"

// AccessGate produces the per-route authentication and authorization stages.
// Routes compose them flat, left to right; a rejection at any stage stops the
// chain before the handler runs.
type AccessGate struct {
	tokens *jwt.Service
	users  repository.UserRepository
}

func NewAccessGate(tokens *jwt.Service, users repository.UserRepository) *AccessGate {
	return &AccessGate{tokens: tokens, users: users}
}

// Authenticate reads the raw token from the authorization header (no Bearer
// prefix), verifies it, and resolves the subject against the users table.
// The resolved record is attached to the request for later stages.
func (g *AccessGate) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("authorization")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Access denied. Token is required."})
		}

		userID, err := g.tokens.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token."})
		}

		user, err := g.users.FindByID(c.Context(), userID)
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token."})
		}
		if err != nil {
			return respondInternal(c, err)
		}

		c.Locals(localAuthUser, user)
		return c.Next()
	}
}

// SelfOrAdmin allows the request when the authenticated user's id equals the
// named path parameter, or the user holds the admin flag.
func (g *AccessGate) SelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := AuthUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token."})
		}

		if user.IsAdmin || user.ID.String() == c.Params(param) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to do that!"})
	}
}

func (g *AccessGate) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := AuthUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token."})
		}

		if user.IsAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not allowed to do that!"})
	}
}

// AuthUser returns the record attached by Authenticate.
func AuthUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals(localAuthUser).(*model.User)
	return user, ok
}

func PrometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()
		statusCode := c.Response().StatusCode()

		if err != nil {
			var e *fiber.Error

			if errors.As(err, &e) {
				statusCode = e.Code
			} else {
				statusCode = fiber.StatusInternalServerError
			}
		}

		method := c.Method()
		path := c.Path()
		statusStr := fmt.Sprintf("%d", statusCode)

		httpRequestTotal.WithLabelValues(method, path, statusStr).Inc()
		httpRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)

		return err
	}
}
