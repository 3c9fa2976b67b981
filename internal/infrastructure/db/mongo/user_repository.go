package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/platformkit/auth-service/internal/core/domain"
)

const usersCollection = "users"

// Password policy enforced by the store: minimum length only, no digit,
// case or symbol requirements.
const minPasswordLength = 4

// MongoUserRepository implements ports.UserStore. It owns password hashing;
// only bcrypt hashes are ever persisted.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID            string   `bson:"_id"`
	Username      string   `bson:"username"`
	Email         string   `bson:"email"`
	PasswordHash  string   `bson:"password_hash"`
	SecurityStamp string   `bson:"security_stamp"`
	Roles         []string `bson:"roles"`
	CreatedAt     int64    `bson:"created_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User, rawPassword string) error {
	if err := validatePassword(rawPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	doc := mongoUser{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		PasswordHash:  string(hash),
		SecurityStamp: user.SecurityStamp,
		Roles:         []string{},
		CreatedAt:     user.CreatedAt.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) VerifyPassword(_ context.Context, user *domain.User, rawPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)) == nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:            mu.ID,
		Username:      mu.Username,
		Email:         mu.Email,
		PasswordHash:  mu.PasswordHash,
		SecurityStamp: mu.SecurityStamp,
		CreatedAt:     unixToTime(mu.CreatedAt),
	}, nil
}

func validatePassword(rawPassword string) error {
	if len(rawPassword) < minPasswordLength {
		return &domain.CredentialError{Violations: []domain.Violation{
			{
				Field:   "password",
				Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
			},
		}}
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
