package auth

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// rbacModel 以角色为主体，keyMatch2 支持 /admin/career-paths/:id 这类路径
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// defaultPolicies 仅管理后台路由受角色控制
var defaultPolicies = [][]string{
	{"admin", "/admin/*", "(GET)|(POST)|(PUT)|(DELETE)"},
}

// InitCasbin defines the RBAC model and initializes the enforcer with GORM adapter
func InitCasbin(db *gorm.DB) (*casbin.Enforcer, error) {
	// 1. 初始化 GORM adapter (创建 casbin_rule 表)
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	// 2. 创建 Enforcer 并从数据库加载策略
	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}

	// 3. 策略为空时写入默认策略
	policies, err := enforcer.GetPolicy()
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		log.Info().Msg("Casbin: no policies found, initializing defaults")
		if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
			return nil, err
		}
	}

	log.Info().Msg("Casbin initialized successfully")
	return enforcer, nil
}
