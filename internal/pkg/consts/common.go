package consts

const (
	// RoleEditor 编辑角色，允许创建/修改文章并执行审核
	RoleEditor = "editor"
)

const (
	HeaderUser  = "X-User"
	HeaderRole  = "X-Role"
	HeaderTrace = "X-Trace-ID"
)

const (
	CtxUserKey  = "user"
	CtxRolesKey = "roles"
)
