package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "gone")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))

	wrapped := errors.Wrap(New(KindPreconditionFailed, "cart is empty"), "checkout")
	assert.Equal(t, KindPreconditionFailed, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(KindInvalidArgument, "bad")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(KindPreconditionFailed, "gate")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(New(KindNotFound, "gone")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Wrap(KindStorage, errors.New("disk"), "save failed")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestMessageHidesCause(t *testing.T) {
	err := Wrap(KindStorage, errors.New("pq: duplicate key"), "failed to save user")
	assert.Equal(t, "failed to save user", Message(err))
	assert.Contains(t, err.Error(), "pq: duplicate key")
}

func TestDetails(t *testing.T) {
	err := NewDetailed(KindPreconditionFailed, "incomplete address", []string{"city", "state"})
	assert.Equal(t, []string{"city", "state"}, DetailsOf(err))
	assert.Nil(t, DetailsOf(New(KindNotFound, "gone")))
}
