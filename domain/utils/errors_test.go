package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthenticated("x")))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(Forbidden("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x")))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(ValidationError("x")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("db down")))
}

func TestHTTPStatusWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("beim Speichern: %w", Conflict("existiert bereits"))
	assert.Equal(t, http.StatusConflict, HTTPStatus(wrapped))
}

func TestErrorMessageSurvives(t *testing.T) {
	err := NotFound("Projekt nicht gefunden")
	assert.Equal(t, "Projekt nicht gefunden", err.Error())
}
