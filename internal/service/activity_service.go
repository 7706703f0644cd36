package service

import (
	"context"
	"strings"
	"time"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ActivityService struct {
	activities repository.ActivityRepository
	campaigns  repository.CampaignRepository
	users      repository.UserRepository
	outbox     repository.OutboxRepository
	log        *zap.Logger
}

func NewActivityService(
	activities repository.ActivityRepository,
	campaigns repository.CampaignRepository,
	users repository.UserRepository,
	outbox repository.OutboxRepository,
	log *zap.Logger,
) *ActivityService {
	return &ActivityService{activities: activities, campaigns: campaigns, users: users, outbox: outbox, log: log}
}

type CreateActivityInput struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Location     string    `json:"location"`
	Status       string    `json:"status"`
	Requirements []string  `json:"requirements"`
	Images       []string  `json:"images"`
	Notes        string    `json:"notes"`
}

type ActivityPatch struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	StartTime    *time.Time `json:"startTime"`
	EndTime      *time.Time `json:"endTime"`
	Location     *string    `json:"location"`
	Status       *string    `json:"status"`
	Requirements *[]string  `json:"requirements"`
	Images       *[]string  `json:"images"`
	Notes        *string    `json:"notes"`
}

func (s *ActivityService) Create(ctx context.Context, ident pkg.Identity, campaignID string, in CreateActivityInput) (*model.Activity, error) {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return nil, pkg.ErrForbidden
	}
	cid, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}
	if _, err := s.campaigns.FindByID(ctx, cid); err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Description == "" || in.Location == "" {
		return nil, pkg.Invalidf("name, description and location are required")
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return nil, pkg.Invalidf("startTime and endTime are required")
	}
	if in.Status == "" {
		in.Status = model.ActivityUpcoming
	}
	if !model.IsValidActivityStatus(in.Status) {
		return nil, pkg.Invalidf("unknown activity status %q", in.Status)
	}

	organizer, err := parseID(ident.UserID)
	if err != nil {
		return nil, err
	}

	a := &model.Activity{
		Campaign:     cid,
		Name:         in.Name,
		Description:  in.Description,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Location:     in.Location,
		Organizer:    organizer, // 取解析后的身份
		Status:       in.Status,
		Requirements: in.Requirements,
		Images:       in.Images,
		Notes:        in.Notes,
	}
	if err := s.activities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ActivityService) Update(ctx context.Context, ident pkg.Identity, activityID string, p ActivityPatch) (*model.Activity, error) {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return nil, pkg.ErrForbidden
	}
	id, err := parseID(activityID)
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
	if p.StartTime != nil {
		set["startTime"] = *p.StartTime
	}
	if p.EndTime != nil {
		set["endTime"] = *p.EndTime
	}
	if p.Location != nil {
		if *p.Location == "" {
			return nil, pkg.Invalidf("location cannot be empty")
		}
		set["location"] = *p.Location
	}
	if p.Status != nil {
		if !model.IsValidActivityStatus(*p.Status) {
			return nil, pkg.Invalidf("unknown activity status %q", *p.Status)
		}
		set["status"] = *p.Status
	}
	if p.Requirements != nil {
		set["requirements"] = *p.Requirements
	}
	if p.Images != nil {
		set["images"] = *p.Images
	}
	if p.Notes != nil {
		// notes 可被显式清空
		set["notes"] = *p.Notes
	}

	return s.activities.Update(ctx, id, set)
}

func (s *ActivityService) Delete(ctx context.Context, ident pkg.Identity, activityID string) error {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return pkg.ErrForbidden
	}
	id, err := parseID(activityID)
	if err != nil {
		return err
	}
	return s.activities.Delete(ctx, id)
}

// Register 任何已登录用户可报名；重复报名由存储层拦下
func (s *ActivityService) Register(ctx context.Context, ident pkg.Identity, activityID string) error {
	id, err := parseID(activityID)
	if err != nil {
		return err
	}
	uid, err := parseID(ident.UserID)
	if err != nil {
		return err
	}

	if err := s.activities.AddParticipant(ctx, id, uid); err != nil {
		return err
	}

	recordEvent(ctx, s.outbox, s.log, model.EventActivityRegistered, activityID, map[string]any{
		"activity": activityID,
		"user":     ident.UserID,
	})
	return nil
}

func (s *ActivityService) ListByCampaign(ctx context.Context, campaignID string) ([]model.ActivityView, error) {
	cid, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}
	list, err := s.activities.ListByCampaign(ctx, cid)
	if err != nil {
		return nil, err
	}

	var ids []primitive.ObjectID
	for _, a := range list {
		ids = append(ids, a.Organizer)
		ids = append(ids, a.Participants...)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.ActivityView, 0, len(list))
	for _, a := range list {
		views = append(views, s.buildView(a, users))
	}
	return views, nil
}

func (s *ActivityService) Get(ctx context.Context, activityID string) (*model.ActivityView, error) {
	id, err := parseID(activityID)
	if err != nil {
		return nil, err
	}
	a, err := s.activities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ids := append([]primitive.ObjectID{a.Organizer}, a.Participants...)
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	view := s.buildView(*a, users)
	return &view, nil
}

func (s *ActivityService) buildView(a model.Activity, users map[primitive.ObjectID]model.User) model.ActivityView {
	view := model.ActivityView{
		Activity:         a,
		OrganizerUser:    userRefFrom(users, a.Organizer),
		ParticipantUsers: []model.UserRef{},
	}
	for _, pid := range a.Participants {
		if ref := userRefFrom(users, pid); ref != nil {
			view.ParticipantUsers = append(view.ParticipantUsers, *ref)
		}
	}
	return view
}

func (s *ActivityService) Count(ctx context.Context) (int64, error) {
	return s.activities.Count(ctx)
}
