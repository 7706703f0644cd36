package mongodb

import (
	"context"
	"time"

	"Volunteer_Hub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	outboxPending int8 = 0
	outboxSent    int8 = 1
)

type OutboxRepo struct {
	db *mongo.Database
}

func NewOutboxRepository(db *mongo.Database) *OutboxRepo {
	return &OutboxRepo{db: db}
}

func (r *OutboxRepo) Insert(ctx context.Context, ev *model.OutboxEvent) error {
	now := time.Now()
	ev.CreatedAt = now
	ev.UpdatedAt = now
	ev.Status = outboxPending
	res, err := r.db.Collection(collOutbox).InsertOne(ctx, ev)
	if err != nil {
		return err
	}
	ev.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *OutboxRepo) ListPending(ctx context.Context, limit int) ([]model.OutboxEvent, error) {
	cur, err := r.db.Collection(collOutbox).Find(ctx,
		bson.M{"status": outboxPending},
		options.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var list []model.OutboxEvent
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepo) MarkSent(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(collOutbox).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": outboxSent, "updatedAt": time.Now()}})
	return err
}

func (r *OutboxRepo) MarkRetry(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.db.Collection(collOutbox).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"retry": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		})
	return err
}
