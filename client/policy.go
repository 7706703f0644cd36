package client

// Role 全局角色，与服务端取值一致
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLeader    Role = "leader"
	RoleVolunteer Role = "volunteer"
)

// 前端控件显隐用的权限判断，需与服务端策略保持一致；
// 服务端仍是最终裁决，这里只省一次必然失败的请求。

func (r Role) CanManageCampaigns() bool {
	return r == RoleAdmin
}

func (r Role) CanManageActivities() bool {
	return r == RoleAdmin || r == RoleLeader
}

func (r Role) CanManageTasks() bool {
	return r == RoleAdmin || r == RoleLeader
}

func (r Role) CanManageMembers() bool {
	return r == RoleAdmin || r == RoleLeader
}

func (r Role) CanProvisionUsers() bool {
	return r == RoleAdmin
}

// CanUpdateTask 管理角色之外，被指派人也可以更新自己的任务
func (s *Session) CanUpdateTask(assignedToID string) bool {
	if s == nil {
		return false
	}
	if s.Role.CanManageTasks() {
		return true
	}
	return assignedToID != "" && assignedToID == s.UserID
}
