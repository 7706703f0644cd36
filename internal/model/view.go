package model

// 列表/详情接口下发的反规范化引用，替代客户端二次查询

type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// MemberUserRef 成员列表额外带 email 与全局角色
type MemberUserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type CampaignRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CampaignView struct {
	Campaign
	CreatedByUser *UserRef `json:"createdByUser,omitempty"`
}

type ActivityView struct {
	Activity
	OrganizerUser    *UserRef  `json:"organizerUser,omitempty"`
	ParticipantUsers []UserRef `json:"participantUsers"`
}

type TaskView struct {
	Task
	AssignedToUser *UserRef `json:"assignedToUser,omitempty"`
	AssignedByUser *UserRef `json:"assignedByUser,omitempty"`
}

type MemberView struct {
	Member
	UserInfo     *MemberUserRef `json:"userInfo,omitempty"`
	CampaignInfo *CampaignRef   `json:"campaignInfo,omitempty"`
}
