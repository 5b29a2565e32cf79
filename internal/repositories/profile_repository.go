package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/skillswap/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepository defines the interface for skill profile operations.
// The matching engine and swap service only ever call the read methods.
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, profile *models.SkillProfile) error
	GetProfileByUserID(ctx context.Context, userID uint) (*models.SkillProfile, error)
	ListVisibleProfiles(ctx context.Context) ([]models.SkillProfile, error)
	DeleteProfile(ctx context.Context, userID uint) error
}

// MongoProfileRepository implements ProfileRepository for MongoDB
type MongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoProfileRepository
func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{collection: db.Collection("profiles")}
}

// UpsertProfile creates or replaces the skill profile for a user
func (r *MongoProfileRepository) UpsertProfile(ctx context.Context, profile *models.SkillProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"skills_offered": dedupeSkills(profile.SkillsOffered),
			"skills_wanted":  dedupeSkills(profile.SkillsWanted),
			"availability":   profile.Availability,
			"rating":         profile.Rating,
			"visibility":     profile.Visibility,
			"updated_at":     now,
		},
		"$setOnInsert": bson.M{
			"user_id":    profile.UserID,
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"user_id": profile.UserID}, update, opts)
	return err
}

// GetProfileByUserID retrieves a skill profile by its owner's user ID
func (r *MongoProfileRepository) GetProfileByUserID(ctx context.Context, userID uint) (*models.SkillProfile, error) {
	var profile models.SkillProfile
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ListVisibleProfiles retrieves every profile whose owner opted into matching
func (r *MongoProfileRepository) ListVisibleProfiles(ctx context.Context) ([]models.SkillProfile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"visibility": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := []models.SkillProfile{}
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// DeleteProfile removes a user's skill profile
func (r *MongoProfileRepository) DeleteProfile(ctx context.Context, userID uint) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// dedupeSkills collapses duplicate labels (case-insensitively) while keeping
// the first-seen casing and order.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := []string{}
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
