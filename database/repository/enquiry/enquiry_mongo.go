package enquiryRepo

import (
	"context"
	"fmt"
	"time"

	"festivo/database"
	"festivo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoEnquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoEnquiryRepo returns an EnquiryRepository backed by MongoDB.
func NewMongoEnquiryRepo() EnquiryRepository {
	return &mongoEnquiryRepo{coll: database.Collection("enquiries")}
}

func (r *mongoEnquiryRepo) Insert(ctx context.Context, enquiry *models.Enquiry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if enquiry.ID == "" {
		enquiry.ID = uuid.New().String()
	}
	if enquiry.Status == "" {
		enquiry.Status = models.EnquiryStatusPending
	}
	if enquiry.CreatedAt.IsZero() {
		enquiry.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, enquiry); err != nil {
		return fmt.Errorf("failed to insert enquiry: %w", err)
	}
	return nil
}

func (r *mongoEnquiryRepo) ListByPlan(ctx context.Context, planID string) ([]models.Enquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"planId": planID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries for plan %s: %w", planID, err)
	}
	defer cursor.Close(ctx)

	var enquiries []models.Enquiry
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}
	return enquiries, nil
}

func (r *mongoEnquiryRepo) CountPending(ctx context.Context, planID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{
		"planId": planID,
		"status": models.EnquiryStatusPending,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending enquiries for plan %s: %w", planID, err)
	}
	return int(n), nil
}

func (r *mongoEnquiryRepo) UpdateStatus(ctx context.Context, enquiryID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{"status": status, "respondedAt": now}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": enquiryID}, update)
	if err != nil {
		return fmt.Errorf("failed to update enquiry %s: %w", enquiryID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoEnquiryRepo) ExpireOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.EnquiryStatusExpired}}
	res, err := r.coll.UpdateMany(ctx, bson.M{
		"status":    models.EnquiryStatusPending,
		"createdAt": bson.M{"$lt": cutoff},
	}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale enquiries: %w", err)
	}
	return res.ModifiedCount, nil
}
