// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	assistanthandler "drip/app/api/assistant/internal/handler/assistant"
	authhandler "drip/app/api/assistant/internal/handler/auth"
	outfitshandler "drip/app/api/assistant/internal/handler/outfits"
	"drip/app/api/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.OptionalAuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/assistant/session",
					Handler: assistanthandler.OpenSessionHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/assistant/message",
					Handler: assistanthandler.SendMessageHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/assistant/transcript/:session_id",
					Handler: assistanthandler.TranscriptHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/v1"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/auth/login",
				Handler: authhandler.LoginHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/auth/signup",
				Handler: authhandler.SignupHandler(serverCtx),
			},
		},
		rest.WithPrefix("/v1"),
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/auth/me",
					Handler: authhandler.MeHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/saved-outfits",
					Handler: outfitshandler.SavedOutfitsHandler(serverCtx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/history",
					Handler: outfitshandler.HistoryHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/save-outfit",
					Handler: outfitshandler.SaveOutfitHandler(serverCtx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/delete-outfit/:outfit_id",
					Handler: outfitshandler.DeleteOutfitHandler(serverCtx),
				},
			}...,
		),
		rest.WithPrefix("/v1"),
	)
}
