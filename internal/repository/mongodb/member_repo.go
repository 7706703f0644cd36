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

type MemberRepository struct {
	db *mongo.Database
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create 重复 (user, campaign) 由唯一索引拦下，翻译为 ErrConflict
func (r *MemberRepository) Create(ctx context.Context, m *model.Member) error {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.JoinedDate.IsZero() {
		m.JoinedDate = now
	}
	res, err := r.db.Collection(collMembers).InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return pkg.ErrConflict
		}
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Member, error) {
	var m model.Member
	err := r.db.Collection(collMembers).FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]model.Member, error) {
	cur, err := r.db.Collection(collMembers).Find(ctx, bson.M{"campaign": campaignID})
	if err != nil {
		return nil, err
	}
	var list []model.Member
	if err := cur.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *MemberRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Member, error) {
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}
	set["updatedAt"] = time.Now()

	var m model.Member
	err := r.db.Collection(collMembers).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Collection(collMembers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) DeleteByCampaign(ctx context.Context, campaignID primitive.ObjectID) error {
	_, err := r.db.Collection(collMembers).DeleteMany(ctx, bson.M{"campaign": campaignID})
	return err
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	return r.db.Collection(collMembers).CountDocuments(ctx, bson.M{})
}
