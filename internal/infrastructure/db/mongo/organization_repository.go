package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmyshoot/booking-api/internal/core/domain"
)

const organizationsCollection = "organizations"

type MongoOrganizationRepository struct {
	coll *mongo.Collection
}

func NewOrganizationRepository(db *mongo.Database) *MongoOrganizationRepository {
	return &MongoOrganizationRepository{coll: db.Collection(organizationsCollection)}
}

type mongoOrganization struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Location      string             `bson:"location,omitempty"`
	ContactNumber string             `bson:"contact_number,omitempty"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *MongoOrganizationRepository) Create(ctx context.Context, org *domain.Organization) (*domain.Organization, error) {
	doc := mongoOrganization{
		Name:          org.Name,
		Location:      org.Location,
		ContactNumber: org.ContactNumber,
		CreatedAt:     org.CreatedAt.Unix(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert organization: %w", err)
	}

	oid, _ := result.InsertedID.(primitive.ObjectID)
	created := *org
	created.ID = oid.Hex()
	return &created, nil
}

func (r *MongoOrganizationRepository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrganizationNotFound
	}

	var mo mongoOrganization
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}

	return &domain.Organization{
		ID:            mo.ID.Hex(),
		Name:          mo.Name,
		Location:      mo.Location,
		ContactNumber: mo.ContactNumber,
		CreatedAt:     time.Unix(mo.CreatedAt, 0).UTC(),
	}, nil
}
