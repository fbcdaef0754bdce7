// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"drip/app/api/assistant/internal/agent/chat"
	"drip/app/api/assistant/internal/backend"
	"drip/app/api/assistant/internal/config"
	"drip/app/common/middleware"

	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config                 config.Config
	AuthMiddleware         rest.Middleware
	OptionalAuthMiddleware rest.Middleware
	Backend                *backend.Client
	Sessions               *chat.Store
	Agent                  *chat.Agent
}

func NewServiceContext(c config.Config) *ServiceContext {
	auth := middleware.NewAuthMiddleware(c.Auth.AccessSecret)
	cli := backend.NewClient(c.Backend.BaseURL)

	return &ServiceContext{
		Config:                 c,
		AuthMiddleware:         auth.Handle,
		OptionalAuthMiddleware: auth.HandleOptional,
		Backend:                cli,
		Sessions:               chat.NewStore(c.Session.IdleTTL),
		Agent:                  chat.NewAgent(cli),
	}
}
