package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
	"github.com/bookmyshoot/booking-api/internal/core/ports"
)

const usersCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Email          string              `bson:"email"`
	FullName       string              `bson:"full_name"`
	Phone          string              `bson:"phone,omitempty"`
	PasswordHash   string              `bson:"password_hash"`
	Role           string              `bson:"role"`
	ProfilePicture string              `bson:"profile_picture,omitempty"`
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty"`
	IsActive       bool                `bson:"is_active"`
	LastLogin      int64               `bson:"last_login,omitempty"`
	CreatedAt      int64               `bson:"created_at"`
	UpdatedAt      int64               `bson:"updated_at"`
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		Email:          user.Email,
		FullName:       user.FullName,
		Phone:          user.Phone,
		PasswordHash:   user.PasswordHash,
		Role:           user.Role,
		ProfilePicture: user.ProfilePicture,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt.Unix(),
		UpdatedAt:      user.UpdatedAt.Unix(),
	}
	if user.OrganizationID != "" {
		oid, err := primitive.ObjectIDFromHex(user.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("invalid organization id: %w", err)
		}
		doc.OrganizationID = &oid
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get ID
	return r.FindByEmail(ctx, user.Email)
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return toDomainUser(&mu), nil
}

// UpdateProfilePicture sets the profile picture URL and returns the updated
// document in a single round trip.
func (r *MongoUserRepository) UpdateProfilePicture(ctx context.Context, email, pictureURL string) (*domain.User, error) {
	update := bson.M{"$set": bson.M{
		"profile_picture": pictureURL,
		"updated_at":      time.Now().UTC().Unix(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mu mongoUser
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile picture: %w", err)
	}
	return toDomainUser(&mu), nil
}

func (r *MongoUserRepository) UpdateLastLogin(ctx context.Context, email string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"last_login": time.Now().UTC().Unix(),
	}})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

type photographerDoc struct {
	ID             primitive.ObjectID  `bson:"_id"`
	FullName       string              `bson:"full_name"`
	Email          string              `bson:"email"`
	ProfilePicture string              `bson:"profile_picture,omitempty"`
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty"`
	Organization   []struct {
		Name     string `bson:"name"`
		Location string `bson:"location,omitempty"`
	} `bson:"organization"`
}

// ListPhotographers returns active photographers, newest first, with the
// owning organization joined in via $lookup.
func (r *MongoUserRepository) ListPhotographers(ctx context.Context) ([]ports.PhotographerListing, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": domain.RolePhotographer, "is_active": true}}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         organizationsCollection,
			"localField":   "organization_id",
			"foreignField": "_id",
			"as":           "organization",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list photographers: %w", err)
	}
	defer cursor.Close(ctx)

	listings := make([]ports.PhotographerListing, 0)
	for cursor.Next(ctx) {
		var doc photographerDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode photographer: %w", err)
		}

		listing := ports.PhotographerListing{
			ID:             doc.ID.Hex(),
			Name:           doc.FullName,
			Email:          doc.Email,
			ProfilePicture: doc.ProfilePicture,
		}
		if doc.OrganizationID != nil {
			listing.OrganizationID = doc.OrganizationID.Hex()
		}
		if len(doc.Organization) == 1 {
			listing.Organization = &ports.OrganizationSummary{
				Name:     doc.Organization[0].Name,
				Location: doc.Organization[0].Location,
			}
		}
		listings = append(listings, listing)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list photographers: %w", err)
	}
	return listings, nil
}

func toDomainUser(mu *mongoUser) *domain.User {
	u := &domain.User{
		ID:             mu.ID.Hex(),
		Email:          mu.Email,
		FullName:       mu.FullName,
		Phone:          mu.Phone,
		PasswordHash:   mu.PasswordHash,
		Role:           mu.Role,
		ProfilePicture: mu.ProfilePicture,
		IsActive:       mu.IsActive,
		LastLogin:      unixToTime(mu.LastLogin),
		CreatedAt:      unixToTime(mu.CreatedAt),
		UpdatedAt:      unixToTime(mu.UpdatedAt),
	}
	if mu.OrganizationID != nil {
		u.OrganizationID = mu.OrganizationID.Hex()
	}
	return u
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
