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

type CampaignRepository struct {
	db *mongo.Database
}

func NewCampaignRepository(db *mongo.Database) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *model.Campaign) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	res, err := r.db.Collection(collCampaigns).InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Campaign, error) {
	var c model.Campaign
	err := r.db.Collection(collCampaigns).FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) List(ctx context.Context) ([]model.Campaign, error) {
	cur, err := r.db.Collection(collCampaigns).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var list []model.Campaign
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update set 键为空时不落库，直接回读
func (r *CampaignRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Campaign, error) {
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	set["updatedAt"] = time.Now()

	var c model.Campaign
	err := r.db.Collection(collCampaigns).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collCampaigns).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(collCampaigns).CountDocuments(ctx, bson.M{})
}
