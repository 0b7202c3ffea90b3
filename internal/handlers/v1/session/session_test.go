package session

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestUserID_Valid(t *testing.T) {
	want := uuid.Must(uuid.NewV4())
	got, err := UserID(want.String())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserID_Missing(t *testing.T) {
	_, err := UserID("")
	assert.Error(t, err)
}

func TestUserID_Malformed(t *testing.T) {
	_, err := UserID("not-a-uuid")
	assert.Error(t, err)
}

func TestUserID_NilRejected(t *testing.T) {
	_, err := UserID(uuid.Nil.String())
	assert.Error(t, err)
}
