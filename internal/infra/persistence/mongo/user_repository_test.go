package mongo

import (
	"testing"
	"time"

	"asana/internal/domain/entity"
	"asana/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMappers_RoundTrip(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "yogi@example.com",
		PasswordHash: "$2a$12$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	doc := fromUserDomain(user)
	assert.Equal(t, user.ID.String(), doc.ID)
	assert.Equal(t, user.Email, doc.Email)
	assert.Equal(t, user.PasswordHash, doc.PasswordHash)

	back, err := toUserDomain(doc)
	require.NoError(t, err)
	assert.Equal(t, user, back)
}

func TestToUserDomain_MalformedID(t *testing.T) {
	doc := &model.UserDocument{
		ID:    "not-a-uuid",
		Email: "yogi@example.com",
	}

	user, err := toUserDomain(doc)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "malformed user id")
}
