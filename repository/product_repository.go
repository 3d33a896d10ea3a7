package repository

import (
	"context"
	"time"

	"techmart-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	filter := bson.M{"_id": id, "deleted_at": bson.M{"$exists": false}}
	var product models.Product
	err := r.collection.FindOne(ctx, filter).Decode(&product)
	return &product, err
}

func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	filter := bson.M{"slug": slug, "deleted_at": bson.M{"$exists": false}}
	var product models.Product
	err := r.collection.FindOne(ctx, filter).Decode(&product)
	return &product, err
}

func (r *ProductRepository) Find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]*models.Product, error) {
	filter["deleted_at"] = bson.M{"$exists": false}
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*mongo.InsertOneResult, error) {
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	return r.collection.InsertOne(ctx, product)
}

func (r *ProductRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id, "deleted_at": bson.M{"$exists": false}}
	updates["updated_at"] = time.Now().UTC()
	return r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
}

// Delete performs a soft delete.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id, "deleted_at": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}}
	return r.collection.UpdateOne(ctx, filter, update)
}
