package service

import (
	"context"
	"testing"
	"time"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newActivityService() (*ActivityService, *MockActivityRepo, *MockCampaignRepo, *MockUserRepo, *MockOutboxRepo) {
	activities := new(MockActivityRepo)
	campaigns := new(MockCampaignRepo)
	users := new(MockUserRepo)
	outbox := new(MockOutboxRepo)
	return NewActivityService(activities, campaigns, users, outbox, zap.NewNop()), activities, campaigns, users, outbox
}

func TestActivityRegisterDuplicate(t *testing.T) {
	svc, activities, _, _, outbox := newActivityService()
	id := primitive.NewObjectID()
	uid := primitive.NewObjectID()
	activities.On("AddParticipant", mock.Anything, id, uid).Return(pkg.ErrAlreadyRegistered)

	err := svc.Register(context.Background(), pkg.Identity{UserID: uid.Hex(), Role: model.RoleVolunteer}, id.Hex())

	assert.ErrorIs(t, err, pkg.ErrAlreadyRegistered)
	outbox.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestActivityRegisterRecordsEvent(t *testing.T) {
	svc, activities, _, _, outbox := newActivityService()
	id := primitive.NewObjectID()
	uid := primitive.NewObjectID()
	activities.On("AddParticipant", mock.Anything, id, uid).Return(nil)
	outbox.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := svc.Register(context.Background(), pkg.Identity{UserID: uid.Hex(), Role: model.RoleVolunteer}, id.Hex())

	require.NoError(t, err)
	outbox.AssertCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestActivityCreateRequiresManagerRole(t *testing.T) {
	svc, activities, _, _, _ := newActivityService()

	ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleVolunteer}
	_, err := svc.Create(context.Background(), ident, primitive.NewObjectID().Hex(), CreateActivityInput{})

	assert.ErrorIs(t, err, pkg.ErrForbidden)
	activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestActivityCreateStampsOrganizer(t *testing.T) {
	svc, activities, campaigns, _, _ := newActivityService()
	cid := primitive.NewObjectID()
	campaigns.On("FindByID", mock.Anything, cid).Return(&model.Campaign{ID: cid}, nil)
	activities.On("Create", mock.Anything, mock.Anything).Return(nil)

	ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleLeader}
	in := CreateActivityInput{
		Name:        "植树",
		Description: "山坡补种",
		StartTime:   time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 12, 17, 0, 0, 0, time.UTC),
		Location:    "北郊林场",
	}
	a, err := svc.Create(context.Background(), ident, cid.Hex(), in)

	require.NoError(t, err)
	assert.Equal(t, ident.UserID, a.Organizer.Hex())
	assert.Equal(t, cid, a.Campaign)
	assert.Equal(t, model.ActivityUpcoming, a.Status)
}

func TestActivityUpdateNotesClearable(t *testing.T) {
	svc, activities, _, _, _ := newActivityService()
	id := primitive.NewObjectID()
	empty := ""
	activities.On("Update", mock.Anything, id, bson.M{"notes": empty}).
		Return(&model.Activity{ID: id}, nil)

	ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleAdmin}
	_, err := svc.Update(context.Background(), ident, id.Hex(), ActivityPatch{Notes: &empty})

	assert.NoError(t, err)
	activities.AssertExpectations(t)
}

func TestActivityUpdateRejectsEmptyName(t *testing.T) {
	svc, activities, _, _, _ := newActivityService()
	empty := " "

	ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleAdmin}
	_, err := svc.Update(context.Background(), ident, primitive.NewObjectID().Hex(), ActivityPatch{Name: &empty})

	assert.ErrorIs(t, err, pkg.ErrInvalidInput)
	activities.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivityListDenormalizesParticipants(t *testing.T) {
	svc, activities, _, users, _ := newActivityService()
	cid := primitive.NewObjectID()
	organizer := model.User{ID: primitive.NewObjectID(), Username: "lead"}
	p1 := model.User{ID: primitive.NewObjectID(), Username: "vol1"}
	gone := primitive.NewObjectID() // 已删除的报名用户

	activities.On("ListByCampaign", mock.Anything, cid).Return([]model.Activity{
		{ID: primitive.NewObjectID(), Campaign: cid, Organizer: organizer.ID, Participants: []primitive.ObjectID{p1.ID, gone}},
	}, nil)
	users.On("FindByIDs", mock.Anything, mock.Anything).Return(map[primitive.ObjectID]model.User{
		organizer.ID: organizer,
		p1.ID:        p1,
	}, nil)

	views, err := svc.ListByCampaign(context.Background(), cid.Hex())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "lead", views[0].OrganizerUser.Username)
	require.Len(t, views[0].ParticipantUsers, 1)
	assert.Equal(t, "vol1", views[0].ParticipantUsers[0].Username)
}
