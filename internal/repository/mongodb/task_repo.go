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

type TaskRepository struct {
	db *mongo.Database
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *model.Task) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	res, err := r.db.Collection(collTasks).InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Task, error) {
	var t model.Task
	err := r.db.Collection(collTasks).FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]model.Task, error) {
	cur, err := r.db.Collection(collTasks).Find(ctx, bson.M{"campaign": campaignID})
	if err != nil {
		return nil, err
	}
	var list []model.Task
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *TaskRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Task, error) {
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	set["updatedAt"] = time.Now()

	var t model.Task
	err := r.db.Collection(collTasks).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collTasks).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteByCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	_, err := r.db.Collection(collTasks).DeleteMany(ctx, bson.M{"campaign": campaignID})
	return err
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(collTasks).CountDocuments(ctx, bson.M{})
}
