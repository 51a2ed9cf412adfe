package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, NotFound, KindOf(New(NotFound, "gone")))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, Unknown, KindOf(nil))

	// The kind survives wrapping by callers.
	wrapped := fmt.Errorf("handler: %w", New(Forbidden, "nope"))
	assert.Equal(t, Forbidden, KindOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Transient, "failed to load event", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to load event: connection reset", err.Error())
	assert.Equal(t, Transient, KindOf(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{InvalidInput, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{NotAvailable, http.StatusConflict},
		{InsufficientInventory, http.StatusConflict},
		{Forbidden, http.StatusForbidden},
		{Unsupported, http.StatusNotImplemented},
		{Transient, http.StatusBadGateway},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(New(tc.kind, "x")), tc.kind.String())
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}
