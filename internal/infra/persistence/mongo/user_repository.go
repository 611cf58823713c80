package mongo

import (
	"context"
	"time"

	"asana/internal/domain/entity"
	domainerrors "asana/internal/domain/errors"
	"asana/internal/domain/repository"
	"asana/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface on MongoDB.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
	}
}

// FindByEmail retrieves a single user by email. The match is case-sensitive;
// two addresses differing only in case are distinct identities.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&doc)
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.users.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&doc)
}

// Create persists a new user as a single atomic insert.
// A duplicate-key failure on the unique email index maps to the domain
// conflict error, so a lost duplicate-signup race surfaces as a conflict
// rather than a silent overwrite.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.users.InsertOne(ctx, fromUserDomain(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence documents.

// toUserDomain converts a stored UserDocument to a domain User entity.
func toUserDomain(data *model.UserDocument) (*entity.User, error) {
	id, err := uuid.Parse(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "malformed user id in store")
	}

	return &entity.User{
		ID:           id,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// fromUserDomain converts a domain User entity to its BSON document for persistence.
func fromUserDomain(data *entity.User) *model.UserDocument {
	return &model.UserDocument{
		ID:           data.ID.String(),
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
