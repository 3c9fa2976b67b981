package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/platformkit/auth-service/internal/core/domain"
)

const rolesCollection = "roles"

// MongoRoleRepository implements ports.RoleRegistry. Role names live in
// their own collection keyed by name; assignments are an ordered array on
// the user document, so $push preserves assignment order.
type MongoRoleRepository struct {
	roles *mongo.Collection
	users *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *MongoRoleRepository {
	return &MongoRoleRepository{
		roles: db.Collection(rolesCollection),
		users: db.Collection(usersCollection),
	}
}

type mongoRole struct {
	Name      string `bson:"_id"`
	CreatedAt int64  `bson:"created_at"`
}

func (r *MongoRoleRepository) RoleExists(ctx context.Context, name string) (bool, error) {
	n, err := r.roles.CountDocuments(ctx, bson.M{"_id": name})
	if err != nil {
		return false, fmt.Errorf("role exists: %w", err)
	}
	return n > 0, nil
}

// CreateRole upserts by role name, making create-if-exists a no-op.
func (r *MongoRoleRepository) CreateRole(ctx context.Context, name string) error {
	_, err := r.roles.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$setOnInsert": mongoRole{Name: name, CreatedAt: time.Now().Unix()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("create role: %w", err)
	}
	return nil
}

func (r *MongoRoleRepository) RolesFor(ctx context.Context, user *domain.User) ([]string, error) {
	var doc struct {
		Roles []string `bson:"roles"`
	}
	err := r.users.FindOne(ctx, bson.M{"_id": user.ID},
		options.FindOne().SetProjection(bson.M{"roles": 1}),
	).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("roles for user: %w", err)
	}
	return doc.Roles, nil
}

func (r *MongoRoleRepository) AssignRole(ctx context.Context, user *domain.User, role string) error {
	exists, err := r.RoleExists(ctx, role)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRoleNotFound
	}

	res, err := r.users.UpdateOne(ctx,
		bson.M{"_id": user.ID, "roles": bson.M{"$ne": role}},
		bson.M{"$push": bson.M{"roles": role}},
	)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	if res.MatchedCount == 0 {
		// either the user is unknown or the role was already assigned
		n, err := r.users.CountDocuments(ctx, bson.M{"_id": user.ID})
		if err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		if n == 0 {
			return domain.ErrUserNotFound
		}
	}
	return nil
}
