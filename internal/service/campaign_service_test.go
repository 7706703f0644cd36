package service

import (
	"context"
	"testing"
	"time"

	"Volunteer_Hub/internal/config"
	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newCampaignService(policy string) (*CampaignService, *MockCampaignRepo, *MockActivityRepo, *MockTaskRepo, *MockMemberRepo, *MockUserRepo, *MockOutboxRepo) {
	campaigns := new(MockCampaignRepo)
	activities := new(MockActivityRepo)
	tasks := new(MockTaskRepo)
	members := new(MockMemberRepo)
	users := new(MockUserRepo)
	outbox := new(MockOutboxRepo)
	svc := NewCampaignService(campaigns, activities, tasks, members, users, outbox, policy, zap.NewNop())
	return svc, campaigns, activities, tasks, members, users, outbox
}

func adminIdent() pkg.Identity {
	return pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: model.RoleAdmin}
}

func validCampaignInput() CreateCampaignInput {
	return CreateCampaignInput{
		Name:        "河道清理",
		Description: "清理城区河道垃圾",
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Location:    "滨江公园",
	}
}

func TestCampaignCreateForbiddenForNonAdmin(t *testing.T) {
	for _, role := range []string{model.RoleLeader, model.RoleVolunteer} {
		t.Run(role, func(t *testing.T) {
			svc, campaigns, _, _, _, _, _ := newCampaignService("")
			ident := pkg.Identity{UserID: primitive.NewObjectID().Hex(), Role: role}

			_, err := svc.Create(context.Background(), ident, validCampaignInput())

			assert.ErrorIs(t, err, pkg.ErrForbidden)
			campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCampaignCreateStampsCreator(t *testing.T) {
	svc, campaigns, _, _, _, _, _ := newCampaignService("")
	ident := adminIdent()
	campaigns.On("Create", mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), ident, validCampaignInput())

	require.NoError(t, err)
	assert.Equal(t, ident.UserID, c.CreatedBy.Hex())
	assert.Equal(t, model.CampaignPlanning, c.Status)
	assert.True(t, c.IsActive)
}

func TestCampaignCreateMissingFields(t *testing.T) {
	svc, campaigns, _, _, _, _, _ := newCampaignService("")
	in := validCampaignInput()
	in.Name = "  "

	_, err := svc.Create(context.Background(), adminIdent(), in)

	assert.ErrorIs(t, err, pkg.ErrInvalidInput)
	campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCampaignUpdateRejectsEmptyName(t *testing.T) {
	svc, campaigns, _, _, _, _, _ := newCampaignService("")
	empty := ""

	_, err := svc.Update(context.Background(), adminIdent(), primitive.NewObjectID().Hex(), CampaignPatch{Name: &empty})

	assert.ErrorIs(t, err, pkg.ErrInvalidInput)
	campaigns.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCampaignUpdateOnlyProvidedFields(t *testing.T) {
	svc, campaigns, _, _, _, _, _ := newCampaignService("")
	id := primitive.NewObjectID()
	status := model.CampaignOngoing
	cover := ""

	campaigns.On("Update", mock.Anything, id, bson.M{"status": status, "coverImage": cover}).
		Return(&model.Campaign{ID: id, Status: status}, nil)

	c, err := svc.Update(context.Background(), adminIdent(), id.Hex(), CampaignPatch{Status: &status, CoverImage: &cover})

	require.NoError(t, err)
	assert.Equal(t, status, c.Status)
	campaigns.AssertExpectations(t)
}

func TestCampaignUpdateUnknownStatus(t *testing.T) {
	svc, _, _, _, _, _, _ := newCampaignService("")
	bad := "archived"

	_, err := svc.Update(context.Background(), adminIdent(), primitive.NewObjectID().Hex(), CampaignPatch{Status: &bad})

	assert.ErrorIs(t, err, pkg.ErrInvalidInput)
}

func TestCampaignDeleteOrphanKeepsChildren(t *testing.T) {
	svc, campaigns, activities, tasks, members, _, outbox := newCampaignService(config.DeleteOrphan)
	id := primitive.NewObjectID()
	campaigns.On("Delete", mock.Anything, id).Return(nil)
	outbox.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := svc.Delete(context.Background(), adminIdent(), id.Hex())

	require.NoError(t, err)
	activities.AssertNotCalled(t, "DeleteByCampaign", mock.Anything, mock.Anything)
	tasks.AssertNotCalled(t, "DeleteByCampaign", mock.Anything, mock.Anything)
	members.AssertNotCalled(t, "DeleteByCampaign", mock.Anything, mock.Anything)
}

func TestCampaignDeleteCascade(t *testing.T) {
	svc, campaigns, activities, tasks, members, _, outbox := newCampaignService(config.DeleteCascade)
	id := primitive.NewObjectID()
	campaigns.On("Delete", mock.Anything, id).Return(nil)
	activities.On("DeleteByCampaign", mock.Anything, id).Return(nil)
	tasks.On("DeleteByCampaign", mock.Anything, id).Return(nil)
	members.On("DeleteByCampaign", mock.Anything, id).Return(nil)
	outbox.On("Insert", mock.Anything, mock.Anything).Return(nil)

	err := svc.Delete(context.Background(), adminIdent(), id.Hex())

	require.NoError(t, err)
	activities.AssertExpectations(t)
	tasks.AssertExpectations(t)
	members.AssertExpectations(t)
	outbox.AssertCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCampaignListDenormalizesCreator(t *testing.T) {
	svc, campaigns, _, _, _, users, _ := newCampaignService("")
	creator := model.User{ID: primitive.NewObjectID(), Username: "zhangsan", FullName: "张三"}
	list := []model.Campaign{
		{ID: primitive.NewObjectID(), Name: "a", CreatedBy: creator.ID},
		{ID: primitive.NewObjectID(), Name: "b", CreatedBy: primitive.NewObjectID()}, // 创建人已被删
	}
	campaigns.On("List", mock.Anything).Return(list, nil)
	users.On("FindByIDs", mock.Anything, mock.Anything).
		Return(map[primitive.ObjectID]model.User{creator.ID: creator}, nil)

	views, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 2)
	require.NotNil(t, views[0].CreatedByUser)
	assert.Equal(t, "zhangsan", views[0].CreatedByUser.Username)
	assert.Nil(t, views[1].CreatedByUser)
}

func TestCampaignGetInvalidID(t *testing.T) {
	svc, _, _, _, _, _, _ := newCampaignService("")

	_, err := svc.Get(context.Background(), "not-an-id")

	assert.ErrorIs(t, err, pkg.ErrInvalidInput)
}
