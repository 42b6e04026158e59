package server

import "github.com/gofiber/fiber/v2"

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id,omitempty"`
	// Fields lists field-level problems for validation failures.
	Fields []FieldMessage `json:"fields,omitempty"`
}

// FieldMessage is one field-level validation problem.
type FieldMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RayID returns the request id set by the requestid middleware, or "unknown".
func RayID(c *fiber.Ctx) string {
	if rayID, ok := c.Locals("requestid").(string); ok && rayID != "" {
		return rayID
	}
	return "unknown"
}

// Fail writes an ErrorResponse with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}
