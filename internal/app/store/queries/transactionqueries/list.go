// Package transactionqueries provides the read-only transaction list
// query with the related member and product documents joined inline.
package transactionqueries

import (
	"context"
	"time"

	"github.com/beanledger/beanledger/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListFilter restricts the transaction list. Nil fields are ignored.
// DateFrom and DateTo form an inclusive range on created_at.
type ListFilter struct {
	MemberID  *primitive.ObjectID
	ProductID *primitive.ObjectID
	DateFrom  *time.Time
	DateTo    *time.Time
}

// List fetches transactions matching the filter, newest first, with the
// referenced member and product expanded via $lookup. The full result
// set is returned; the API has no pagination.
func List(ctx context.Context, db *mongo.Database, filter ListFilter) ([]models.ExpandedTransaction, error) {
	match := buildMatch(filter)

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "members",
			"localField":   "member_id",
			"foreignField": "_id",
			"as":           "member",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$member",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "product_id",
			"foreignField": "_id",
			"as":           "product",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$product",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cur, err := db.Collection("transactions").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.ExpandedTransaction
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func buildMatch(filter ListFilter) bson.M {
	match := bson.M{}
	if filter.MemberID != nil {
		match["member_id"] = *filter.MemberID
	}
	if filter.ProductID != nil {
		match["product_id"] = *filter.ProductID
	}
	created := bson.M{}
	if filter.DateFrom != nil {
		created["$gte"] = filter.DateFrom.UTC()
	}
	if filter.DateTo != nil {
		created["$lte"] = filter.DateTo.UTC()
	}
	if len(created) > 0 {
		match["created_at"] = created
	}
	return match
}
