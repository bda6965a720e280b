package planRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"festivo/database"
	"festivo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo returns a PlanRepository backed by MongoDB.
func NewMongoPlanRepo() PlanRepository {
	return &mongoPlanRepo{coll: database.Collection("party_plans")}
}

func (r *mongoPlanRepo) Load(ctx context.Context, ownerID string) (*models.PartyPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var plan models.PartyPlan
	if err := r.coll.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load plan for %s: %w", ownerID, err)
	}
	if plan.Slots == nil {
		plan.Slots = make(map[string]models.PlanSlot)
	}
	return &plan, nil
}

func (r *mongoPlanRepo) Save(ctx context.Context, plan *models.PartyPlan) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"ownerId": plan.OwnerID}, plan, opts); err != nil {
		return fmt.Errorf("failed to save plan %s: %w", plan.ID, err)
	}
	return nil
}

func (r *mongoPlanRepo) Delete(ctx context.Context, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"ownerId": ownerID}); err != nil {
		return fmt.Errorf("failed to delete plan for %s: %w", ownerID, err)
	}
	return nil
}

func (r *mongoPlanRepo) SavePartyDetails(ctx context.Context, ownerID string, details models.PartyDetails) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"details": details, "updatedAt": time.Now()}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"ownerId": ownerID}, update, opts); err != nil {
		return fmt.Errorf("failed to save party details for %s: %w", ownerID, err)
	}
	return nil
}

func (r *mongoPlanRepo) LoadPartyDetails(ctx context.Context, ownerID string) (*models.PartyDetails, error) {
	plan, err := r.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	details := plan.Details
	return &details, nil
}
