package api

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const localBody = "body"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseAndValidate is the declarative validation stage: it parses the request
// body (JSON or multipart form fields) into T, runs every declared rule, and
// short-circuits with the aggregated field errors so the handler never sees a
// malformed request. failStatus matches the route's contract (400 or 422).
func ParseAndValidate[T any](failStatus int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body T
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse request body"})
		}

		if err := validate.Struct(&body); err != nil {
			return c.Status(failStatus).JSON(fiber.Map{"errors": fieldErrors(err)})
		}

		c.Locals(localBody, &body)
		return c.Next()
	}
}

// Body returns the value stored by ParseAndValidate for this request.
func Body[T any](c *fiber.Ctx) *T {
	body, _ := c.Locals(localBody).(*T)
	return body
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "email":
		return "Invalid email format."
	case "numeric":
		return fmt.Sprintf("%s must be a number.", fe.Field())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s element(s).", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
