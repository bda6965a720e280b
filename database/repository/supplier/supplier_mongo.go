package supplierRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"festivo/database"
	"festivo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSupplierNotFound is returned when no supplier matches the lookup.
var ErrSupplierNotFound = errors.New("supplier not found")

type mongoSupplierRepo struct {
	coll *mongo.Collection
}

// NewMongoSupplierRepo returns a SupplierRepository backed by MongoDB.
func NewMongoSupplierRepo() SupplierRepository {
	return &mongoSupplierRepo{coll: database.Collection("suppliers")}
}

func (r *mongoSupplierRepo) GetByID(ctx context.Context, id string) (*models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var supplier models.Supplier
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&supplier); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to fetch supplier %s: %w", id, err)
	}
	ensureDefaultPackages(&supplier)
	return &supplier, nil
}

func (r *mongoSupplierRepo) GetByCategory(ctx context.Context, category string) ([]models.Supplier, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers in %s: %w", category, err)
	}
	defer cursor.Close(ctx)

	var suppliers []models.Supplier
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, err
	}
	for i := range suppliers {
		ensureDefaultPackages(&suppliers[i])
	}
	return suppliers, nil
}

func (r *mongoSupplierRepo) Upsert(ctx context.Context, supplier *models.Supplier) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
		supplier.CreatedAt = time.Now()
	}
	supplier.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": supplier.ID}, supplier, opts); err != nil {
		return fmt.Errorf("failed to upsert supplier %s: %w", supplier.ID, err)
	}
	return nil
}

// ensureDefaultPackages generates a single package from the supplier's
// headline price when none have been authored, so the booking pipeline
// always has a package to work with.
func ensureDefaultPackages(s *models.Supplier) {
	if len(s.Packages) > 0 {
		return
	}
	price := s.Price
	if price == 0 {
		price = s.PriceFrom
	}
	s.Packages = []models.Package{{
		ID:    s.ID + ":standard",
		Name:  "Standard",
		Price: price,
	}}
}
