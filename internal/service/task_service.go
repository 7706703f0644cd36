package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type TaskService struct {
	tasks     repository.TaskRepository
	campaigns repository.CampaignRepository
	users     repository.UserRepository
	log       *zap.Logger
}

func NewTaskService(
	tasks repository.TaskRepository,
	campaigns repository.CampaignRepository,
	users repository.UserRepository,
	log *zap.Logger,
) *TaskService {
	return &TaskService{tasks: tasks, campaigns: campaigns, users: users, log: log}
}

type CreateTaskInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssignedTo  string    `json:"assignedTo"` // 可为空
	DueDate     time.Time `json:"dueDate"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
}

type TaskPatch struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	AssignedTo      *string    `json:"assignedTo"`
	DueDate         *time.Time `json:"dueDate"`
	Status          *string    `json:"status"`
	Priority        *string    `json:"priority"`
	CompletionNotes *string    `json:"completionNotes"`
}

func (s *TaskService) Create(ctx context.Context, ident pkg.Identity, campaignID string, in CreateTaskInput) (*model.Task, error) {
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

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, pkg.Invalidf("title is required")
	}
	if in.DueDate.IsZero() {
		return nil, pkg.Invalidf("dueDate is required")
	}
	if in.Status == "" {
		in.Status = model.TaskPending
	}
	if !model.IsValidTaskStatus(in.Status) {
		return nil, pkg.Invalidf("unknown task status %q", in.Status)
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !model.IsValidTaskPriority(in.Priority) {
		return nil, pkg.Invalidf("unknown task priority %q", in.Priority)
	}

	var assignee primitive.ObjectID
	if in.AssignedTo != "" {
		assignee, err = s.resolveAssignee(ctx, in.AssignedTo)
		if err != nil {
			return nil, err
		}
	}

	assigner, err := parseID(ident.UserID)
	if err != nil {
		return nil, err
	}

	t := &model.Task{
		Campaign:    cid,
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  assignee,
		AssignedBy:  assigner, // 取解析后的身份
		DueDate:     in.DueDate,
		Status:      in.Status,
		Priority:    in.Priority,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update admin、leader 或被指派人可改；其余已登录用户一律 Forbidden
func (s *TaskService) Update(ctx context.Context, ident pkg.Identity, taskID string, p TaskPatch) (*model.Task, error) {
	id, err := parseID(taskID)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerID := ""
	if !task.AssignedTo.IsZero() {
		ownerID = task.AssignedTo.Hex()
	}
	if !pkg.PermitOwnerOrRole(ident, ownerID, model.RoleAdmin, model.RoleLeader) {
		return nil, pkg.ErrForbidden
	}

	set := bson.M{}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return nil, pkg.Invalidf("title cannot be empty")
		}
		set["title"] = title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.AssignedTo != nil {
		if *p.AssignedTo == "" {
			set["assignedTo"] = primitive.NilObjectID
		} else {
			assignee, err := s.resolveAssignee(ctx, *p.AssignedTo)
			if err != nil {
				return nil, err
			}
			set["assignedTo"] = assignee
		}
	}
	if p.DueDate != nil {
		set["dueDate"] = *p.DueDate
	}
	if p.Status != nil {
		// 状态不做迁移校验，四个合法值之间任意切换
		if !model.IsValidTaskStatus(*p.Status) {
			return nil, pkg.Invalidf("unknown task status %q", *p.Status)
		}
		set["status"] = *p.Status
	}
	if p.Priority != nil {
		if !model.IsValidTaskPriority(*p.Priority) {
			return nil, pkg.Invalidf("unknown task priority %q", *p.Priority)
		}
		set["priority"] = *p.Priority
	}
	if p.CompletionNotes != nil {
		set["completionNotes"] = *p.CompletionNotes
	}

	return s.tasks.Update(ctx, id, set)
}

func (s *TaskService) Delete(ctx context.Context, ident pkg.Identity, taskID string) error {
	if !pkg.Permit(ident, model.RoleAdmin, model.RoleLeader) {
		return pkg.ErrForbidden
	}
	id, err := parseID(taskID)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) ListByCampaign(ctx context.Context, campaignID string) ([]model.TaskView, error) {
	cid, err := parseID(campaignID)
	if err != nil {
		return nil, err
	}
	list, err := s.tasks.ListByCampaign(ctx, cid)
	if err != nil {
		return nil, err
	}

	var ids []primitive.ObjectID
	for _, t := range list {
		if !t.AssignedTo.IsZero() {
			ids = append(ids, t.AssignedTo)
		}
		ids = append(ids, t.AssignedBy)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]model.TaskView, 0, len(list))
	for _, t := range list {
		views = append(views, model.TaskView{
			Task:           t,
			AssignedToUser: userRefFrom(users, t.AssignedTo),
			AssignedByUser: userRefFrom(users, t.AssignedBy),
		})
	}
	return views, nil
}

func (s *TaskService) Get(ctx context.Context, taskID string) (*model.TaskView, error) {
	id, err := parseID(taskID)
	if err != nil {
		return nil, err
	}
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var ids []primitive.ObjectID
	if !t.AssignedTo.IsZero() {
		ids = append(ids, t.AssignedTo)
	}
	ids = append(ids, t.AssignedBy)
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &model.TaskView{
		Task:           *t,
		AssignedToUser: userRefFrom(users, t.AssignedTo),
		AssignedByUser: userRefFrom(users, t.AssignedBy),
	}, nil
}

func (s *TaskService) Count(ctx context.Context) (int64, error) {
	return s.tasks.Count(ctx)
}

func (s *TaskService) resolveAssignee(ctx context.Context, hexID string) (primitive.ObjectID, error) {
	id, err := parseID(hexID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return primitive.NilObjectID, pkg.Invalidf("assignee %s not found", hexID)
		}
		return primitive.NilObjectID, err
	}
	return id, nil
}
