package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collUsers      = "users"
	collCampaigns  = "campaigns"
	collActivities = "activities"
	collTasks      = "tasks"
	collMembers    = "members"
	collOutbox     = "outbox"
)

// Connect 建立连接并做一次 Ping 健康检查
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}
	return client, client.Database(database), nil
}

// EnsureIndexes 建索引。(user, campaign) 唯一索引是成员唯一性的最终防线，
// 应用层的预检查不防并发。
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(collMembers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "campaign", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "campaign", Value: 1}}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(collActivities).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "campaign", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(collTasks).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "campaign", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(collOutbox).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	return err
}
