package pkg

// Identity 每次请求从存储刷新后的身份，不信任 token 里缓存的角色
type Identity struct {
	UserID string
	Role   string
}

// Permit 角色集合校验：全局角色在允许集合内才放行
func Permit(id Identity, allowed ...string) bool {
	for _, r := range allowed {
		if id.Role == r {
			return true
		}
	}
	return false
}

// PermitOwnerOrRole 角色在允许集合内，或者本人即资源 owner
func PermitOwnerOrRole(id Identity, ownerID string, allowed ...string) bool {
	if Permit(id, allowed...) {
		return true
	}
	return ownerID != "" && ownerID == id.UserID
}
