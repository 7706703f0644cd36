package mongodb

import (
	"context"
	"errors"
	"time"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityRepository struct {
	db *mongo.Database
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, a *model.Activity) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Participants == nil {
		a.Participants = []primitive.ObjectID{}
	}
	res, err := r.db.Collection(collActivities).InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ActivityRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Activity, error) {
	var a model.Activity
	err := r.db.Collection(collActivities).FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]model.Activity, error) {
	cur, err := r.db.Collection(collActivities).Find(ctx, bson.M{"campaign": campaignID})
	if err != nil {
		return nil, err
	}
	var list []model.Activity
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ActivityRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Activity, error) {
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	set["updatedAt"] = time.Now()

	var a model.Activity
	err := r.db.Collection(collActivities).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collActivities).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

func (r *ActivityRepository) DeleteByCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	_, err := r.db.Collection(collActivities).DeleteMany(ctx, bson.M{"campaign": campaignID})
	return err
}

// AddParticipant 过滤条件带 $ne，保证同一用户至多写入一次，并发重复报名也只会成功一个
func (r *ActivityRepository) AddParticipant(ctx context.Context, id, userID primitive.ObjectID) error {
	res, err := r.db.Collection(collActivities).UpdateOne(ctx,
		bson.M{"_id": id, "participants": bson.M{"$ne": userID}},
		bson.M{
			"$addToSet": bson.M{"participants": userID},
			"$set":      bson.M{"updatedAt": time.Now()},
		})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// 未命中：活动不存在，或该用户已在名单内
		n, err := r.db.Collection(collActivities).CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return pkg.ErrNotFound
		}
		return pkg.ErrAlreadyRegistered
	}
	return nil
}

func (r *ActivityRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(collActivities).CountDocuments(ctx, bson.M{})
}
