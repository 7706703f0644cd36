package client

import (
	"context"
	"net/http"
)

// 战役

func (c *Client) Campaigns(ctx context.Context) ([]Campaign, error) {
	var list []Campaign
	err := c.do(ctx, http.MethodGet, "/api/campaigns", nil, &list)
	return list, err
}

func (c *Client) Campaign(ctx context.Context, id string) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodGet, "/api/campaigns/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCampaign(ctx context.Context, in CreateCampaignInput) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodPost, "/api/campaigns", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, p CampaignPatch) (*Campaign, error) {
	var out Campaign
	if err := c.do(ctx, http.MethodPut, "/api/campaigns/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/campaigns/"+id, nil, nil)
}

func (c *Client) CampaignCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/api/campaigns/count")
}

// 活动

func (c *Client) CampaignActivities(ctx context.Context, campaignID string) ([]Activity, error) {
	var list []Activity
	err := c.do(ctx, http.MethodGet, "/api/campaigns/"+campaignID+"/activities", nil, &list)
	return list, err
}

func (c *Client) Activity(ctx context.Context, id string) (*Activity, error) {
	var out Activity
	if err := c.do(ctx, http.MethodGet, "/api/activities/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateActivity(ctx context.Context, campaignID string, in CreateActivityInput) (*Activity, error) {
	var out Activity
	if err := c.do(ctx, http.MethodPost, "/api/campaigns/"+campaignID+"/activities", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateActivity(ctx context.Context, id string, p ActivityPatch) (*Activity, error) {
	var out Activity
	if err := c.do(ctx, http.MethodPut, "/api/activities/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/activities/"+id, nil, nil)
}

// RegisterForActivity 重复报名返回 409 的 APIError
func (c *Client) RegisterForActivity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/activities/"+id+"/register", nil, nil)
}

func (c *Client) ActivityCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/api/activities/count")
}

// 任务

func (c *Client) CampaignTasks(ctx context.Context, campaignID string) ([]Task, error) {
	var list []Task
	err := c.do(ctx, http.MethodGet, "/api/campaigns/"+campaignID+"/tasks", nil, &list)
	return list, err
}

func (c *Client) Task(ctx context.Context, id string) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(ctx context.Context, campaignID string, in CreateTaskInput) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPost, "/api/campaigns/"+campaignID+"/tasks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, p TaskPatch) (*Task, error) {
	var out Task
	if err := c.do(ctx, http.MethodPut, "/api/tasks/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

func (c *Client) TaskCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/api/tasks/count")
}

// 成员

func (c *Client) CampaignMembers(ctx context.Context, campaignID string) ([]Member, error) {
	var list []Member
	err := c.do(ctx, http.MethodGet, "/api/campaigns/"+campaignID+"/members", nil, &list)
	return list, err
}

func (c *Client) AddMember(ctx context.Context, campaignID string, in AddMemberInput) (*Member, error) {
	var out Member
	if err := c.do(ctx, http.MethodPost, "/api/campaigns/"+campaignID+"/members", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMember(ctx context.Context, memberID string, p MemberPatch) (*Member, error) {
	var out Member
	if err := c.do(ctx, http.MethodPut, "/api/members/"+memberID, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveMember(ctx context.Context, memberID string) error {
	return c.do(ctx, http.MethodDelete, "/api/members/"+memberID, nil, nil)
}

func (c *Client) MemberCount(ctx context.Context) (int64, error) {
	return c.count(ctx, "/api/members/count")
}

func (c *Client) count(ctx context.Context, path string) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
