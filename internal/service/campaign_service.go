package service

import (
	"context"
	"strings"
	"time"

	"Volunteer_Hub/internal/config"
	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CampaignService struct {
	campaigns    repository.CampaignRepository
	activities   repository.ActivityRepository
	tasks        repository.TaskRepository
	members      repository.MemberRepository
	users        repository.UserRepository
	outbox       repository.OutboxRepository
	deletePolicy string
	log          *zap.Logger
}

func NewCampaignService(
	campaigns repository.CampaignRepository,
	activities repository.ActivityRepository,
	tasks repository.TaskRepository,
	members repository.MemberRepository,
	users repository.UserRepository,
	outbox repository.OutboxRepository,
	deletePolicy string,
	log *zap.Logger,
) *CampaignService {
	if deletePolicy == "" {
		deletePolicy = config.DeleteOrphan
	}
	return &CampaignService{
		campaigns:    campaigns,
		activities:   activities,
		tasks:        tasks,
		members:      members,
		users:        users,
		outbox:       outbox,
		deletePolicy: deletePolicy,
		log:          log,
	}
}

type CreateCampaignInput struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	Objectives   []string  `json:"objectives"`
	Requirements []string  `json:"requirements"`
	CoverImage   string    `json:"coverImage"`
}

// CampaignPatch 指针区分「未提供」与「显式写入」，空串不再被悄悄忽略
type CampaignPatch struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Location     *string    `json:"location"`
	Status       *string    `json:"status"`
	Objectives   *[]string  `json:"objectives"`
	Requirements *[]string  `json:"requirements"`
	CoverImage   *string    `json:"coverImage"`
	IsActive     *bool      `json:"isActive"`
}

func (s *CampaignService) Create(ctx context.Context, ident pkg.Identity, in CreateCampaignInput) (*model.Campaign, error) {
	if !pkg.Permit(ident, model.RoleAdmin) {
		return nil, pkg.ErrForbidden
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Description == "" || in.Location == "" {
		return nil, pkg.Invalidf("name, description and location are required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, pkg.Invalidf("startDate and endDate are required")
	}
	if in.Status == "" {
		in.Status = model.CampaignPlanning
	}
	if !model.IsValidCampaignStatus(in.Status) {
		return nil, pkg.Invalidf("unknown campaign status %q", in.Status)
	}

	creator, err := parseID(ident.UserID)
	if err != nil {
		return nil, err
	}

	c := &model.Campaign{
		Name:         in.Name,
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Location:     in.Location,
		Status:       in.Status,
		CreatedBy:    creator, // 永远取解析后的身份，不取请求体
		CoverImage:   in.CoverImage,
		Objectives:   in.Objectives,
		Requirements: in.Requirements,
		IsActive:     true,
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CampaignService) Update(ctx context.Context, ident pkg.Identity, campaignID string, p CampaignPatch) (*model.Campaign, error) {
	if !pkg.Permit(ident, model.RoleAdmin) {
		return nil, pkg.ErrForbidden
	}
	id, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, pkg.Invalidf("name cannot be empty")
		}
		set["name"] = name
	}
	if p.Description != nil {
		if *p.Description == "" {
			return nil, pkg.Invalidf("description cannot be empty")
		}
		set["description"] = *p.Description
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	if p.Location != nil {
		if *p.Location == "" {
			return nil, pkg.Invalidf("location cannot be empty")
		}
		set["location"] = *p.Location
	}
	if p.Status != nil {
		if !model.IsValidCampaignStatus(*p.Status) {
			return nil, pkg.Invalidf("unknown campaign status %q", *p.Status)
		}
		set["status"] = *p.Status
	}
	if p.Objectives != nil {
		set["objectives"] = *p.Objectives
	}
	if p.Requirements != nil {
		set["requirements"] = *p.Requirements
	}
	if p.CoverImage != nil {
		set["coverImage"] = *p.CoverImage
	}
	if p.IsActive != nil {
		set["isActive"] = *p.IsActive
	}
	// createdBy 不可变，patch 里没有它

	return s.campaigns.Update(ctx, id, set)
}

// Delete 策略可配：orphan 保留子实体（悬挂引用），cascade 连同活动/任务/成员一起删
func (s *CampaignService) Delete(ctx context.Context, ident pkg.Identity, campaignID string) error {
	if !pkg.Permit(ident, model.RoleAdmin) {
		return pkg.ErrForbidden
	}
	id, err := parseID(campaignID)
	if err != nil {
		return err
	}

	if err := s.campaigns.Delete(ctx, id); err != nil {
		return err
	}

	if s.deletePolicy == config.DeleteCascade {
		if err := s.activities.DeleteByCampaign(ctx, id); err != nil {
			return err
		}
		if err := s.tasks.DeleteByCampaign(ctx, id); err != nil {
			return err
		}
		if err := s.members.DeleteByCampaign(ctx, id); err != nil {
			return err
		}
	}

	recordEvent(ctx, s.outbox, s.log, model.EventCampaignDeleted, campaignID, map[string]any{
		"campaign": campaignID,
		"policy":   s.deletePolicy,
	})
	return nil
}

func (s *CampaignService) List(ctx context.Context) ([]model.CampaignView, error) {
	list, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.CreatedBy)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.CampaignView, 0, len(list))
	for _, c := range list {
		views = append(views, model.CampaignView{
			Campaign:      c,
			CreatedByUser: userRefFrom(users, c.CreatedBy),
		})
	}
	return views, nil
}

func (s *CampaignService) Get(ctx context.Context, campaignID string) (*model.CampaignView, error) {
	id, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}
	c, err := s.campaigns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &model.CampaignView{Campaign: *c}
	if creator, err := s.users.FindByID(ctx, c.CreatedBy); err == nil {
		view.CreatedByUser = userRef(creator)
	}
	return view, nil
}

func (s *CampaignService) Count(ctx context.Context) (int64, error) {
	return s.campaigns.Count(ctx)
}
