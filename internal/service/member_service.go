package service

import (
	"context"
	"errors"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MemberService struct {
	members   repository.MemberRepository
	users     repository.UserRepository
	campaigns repository.CampaignRepository
	outbox    repository.OutboxRepository
	log       *zap.Logger
}

func NewMemberService(
	members repository.MemberRepository,
	users repository.UserRepository,
	campaigns repository.CampaignRepository,
	outbox repository.OutboxRepository,
	log *zap.Logger,
) *MemberService {
	return &MemberService{members: members, users: users, campaigns: campaigns, outbox: outbox, log: log}
}

type AddMemberInput struct {
	UserID           string   `json:"userId"`
	Role             string   `json:"role"`
	Responsibilities []string `json:"responsibilities"`
}

type MemberPatch struct {
	Role             *string   `json:"role"`
	Responsibilities *[]string `json:"responsibilities"`
	Status           *string   `json:"status"`
}

// Add (user, campaign) 已存在则 Conflict；唯一性靠存储层索引，不靠预检查
func (s *MemberService) Add(ctx context.Context, ident pkg.Identity, campaignID string, in AddMemberInput) (*model.Member, error) {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return nil, pkg.ErrForbidden
	}
	cid, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}
	uid, err := parseID(in.UserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, uid); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFoundf("user %s", in.UserID)
		}
		return nil, err
	}
	if _, err := s.campaigns.FindByID(ctx, cid); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, pkg.NotFoundf("campaign %s", campaignID)
		}
		return nil, err
	}

	if in.Role == "" {
		in.Role = model.MemberRoleMember
	}
	if !model.IsValidMemberRole(in.Role) {
		return nil, pkg.Invalidf("unknown member role %q", in.Role)
	}

	m := &model.Member{
		User:             uid,
		Campaign:         cid,
		Role:             in.Role,
		Responsibilities: in.Responsibilities,
		Status:           model.MemberActive,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}

	recordEvent(ctx, s.outbox, s.log, model.EventMemberAdded, m.ID.Hex(), map[string]any{
		"member":   m.ID.Hex(),
		"user":     in.UserID,
		"campaign": campaignID,
		"role":     in.Role,
	})
	return m, nil
}

func (s *MemberService) Update(ctx context.Context, ident pkg.Identity, memberID string, p MemberPatch) (*model.Member, error) {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return nil, pkg.ErrForbidden
	}
	id, err := parseID(memberID)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if p.Role != nil {
		if !model.IsValidMemberRole(*p.Role) {
			return nil, pkg.Invalidf("unknown member role %q", *p.Role)
		}
		set["role"] = *p.Role
	}
	if p.Responsibilities != nil {
		set["responsibilities"] = *p.Responsibilities
	}
	if p.Status != nil {
		if !model.IsValidMemberStatus(*p.Status) {
			return nil, pkg.Invalidf("unknown member status %q", *p.Status)
		}
		set["status"] = *p.Status
	}

	return s.members.Update(ctx, id, set)
}

func (s *MemberService) Remove(ctx context.Context, ident pkg.Identity, memberID string) error {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return pkg.ErrForbidden
	}
	id, err := parseID(memberID)
	if err != nil {
		return err
	}

	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.members.Delete(ctx, id); err != nil {
		return err
	}

	recordEvent(ctx, s.outbox, s.log, model.EventMemberRemoved, memberID, map[string]any{
		"member":   memberID,
		"user":     m.User.Hex(),
		"campaign": m.Campaign.Hex(),
	})
	return nil
}

func (s *MemberService) ListByCampaign(ctx context.Context, campaignID string) ([]model.MemberView, error) {
	cid, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}
	list, err := s.members.ListByCampaign(ctx, cid)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.User)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	var campaignRef *model.CampaignRef
	if c, err := s.campaigns.FindByID(ctx, cid); err == nil {
		campaignRef = &model.CampaignRef{ID: c.ID.Hex(), Name: c.Name}
	}

	views := make([]model.MemberView, 0, len(list))
	for _, m := range list {
		view := model.MemberView{Member: m, CampaignInfo: campaignRef}
		if u, ok := users[m.User]; ok {
			view.UserInfo = &model.MemberUserRef{
				ID:       u.ID.Hex(),
				Username: u.Username,
				FullName: u.FullName,
				Email:    u.Email,
				Role:     u.Role,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *MemberService) Count(ctx context.Context) (int64, error) {
	return s.members.Count(ctx)
}
