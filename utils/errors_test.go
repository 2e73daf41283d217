package utils

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsForbidden(Forbidden("x")))

	assert.False(t, IsConflict(NotFound("x")))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("add member: %w", Conflict("User already belongs to another team"))
	assert.True(t, IsConflict(err))
	assert.Equal(t, fiber.StatusConflict, StatusCode(err))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, fiber.StatusNotFound, StatusCode(NotFound("x")))
	assert.Equal(t, fiber.StatusConflict, StatusCode(Conflict("x")))
	assert.Equal(t, fiber.StatusForbidden, StatusCode(Forbidden("x")))
	assert.Equal(t, fiber.StatusInternalServerError, StatusCode(fmt.Errorf("boom")))
}
