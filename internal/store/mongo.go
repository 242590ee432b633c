package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fairyhunter13/bike-store-service/internal/model"
)

// notDeleted is the predicate applied to every default product read.
func notDeleted() bson.M {
	return bson.M{"isDeleted": false}
}

// MongoProductRepository stores products in the "products" collection.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository returns a repository over db's products collection.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection("products")}
}

// EnsureIndexes creates the unique name index used for conflict detection.
func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoProductRepository) Insert(ctx context.Context, p model.Product) error {
	_, err := r.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *MongoProductRepository) List(ctx context.Context) ([]model.Product, error) {
	cur, err := r.coll.Find(ctx, notDeleted())
	if err != nil {
		return nil, err
	}
	products := []model.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) Get(ctx context.Context, id string) (model.Product, error) {
	filter := notDeleted()
	filter["_id"] = id
	var p model.Product
	err := r.coll.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, ErrNotFound
	}
	return p, err
}

func (r *MongoProductRepository) Update(ctx context.Context, id string, u model.ProductUpdate) (model.Product, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Brand != nil {
		set["brand"] = *u.Brand
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Quantity != nil {
		set["quantity"] = *u.Quantity
		set["inStock"] = *u.Quantity > 0
	} else if u.InStock != nil {
		set["inStock"] = *u.InStock
	}
	if u.IsDeleted != nil {
		set["isDeleted"] = *u.IsDeleted
	}

	filter := notDeleted()
	filter["_id"] = id
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p model.Product
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return model.Product{}, ErrDuplicateName
	}
	return p, err
}

func (r *MongoProductRepository) SoftDelete(ctx context.Context, id string) error {
	filter := notDeleted()
	filter["_id"] = id
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"isDeleted": true,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock performs the stock check and decrement as one conditional
// write. The filter requires quantity >= qty, so two concurrent orders can
// never both drain the same stock; the pipeline recomputes inStock in the
// same update.
func (r *MongoProductRepository) DecrementStock(ctx context.Context, id string, qty int) (model.Product, error) {
	filter := bson.M{
		"_id":       id,
		"isDeleted": false,
		"quantity":  bson.M{"$gte": qty},
	}
	newQty := bson.M{"$subtract": bson.A{"$quantity", qty}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"quantity":  newQty,
			"inStock":   bson.M{"$gt": bson.A{newQty, 0}},
			"updatedAt": time.Now().UTC(),
		}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p model.Product
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, r.classifyDecrementFailure(ctx, id)
	}
	return p, err
}

// classifyDecrementFailure reads the product without the soft-delete filter
// to tell missing, deleted, and short-stock apart after a zero-row match.
func (r *MongoProductRepository) classifyDecrementFailure(ctx context.Context, id string) error {
	var p model.Product
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if p.IsDeleted {
		return ErrProductGone
	}
	return &InsufficientStockError{Available: p.Quantity}
}

func (r *MongoProductRepository) IncrementStock(ctx context.Context, id string, qty int) error {
	newQty := bson.M{"$add": bson.A{"$quantity", qty}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"quantity":  newQty,
			"inStock":   bson.M{"$gt": bson.A{newQty, 0}},
			"updatedAt": time.Now().UTC(),
		}}},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// MongoOrderRepository stores orders in the "orders" collection.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

// NewMongoOrderRepository returns a repository over db's orders collection.
func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection("orders")}
}

func (r *MongoOrderRepository) Insert(ctx context.Context, o model.Order) error {
	_, err := r.coll.InsertOne(ctx, o)
	return err
}

// TotalRevenue sums totalPrice server-side. No orders yields 0.
func (r *MongoOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalRevenue": bson.M{"$sum": "$totalPrice"},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}
