package biz

type CtxKey string

const (
	USER_KEY  CtxKey = "user_id"
	TOKEN_KEY CtxKey = "auth_token"

	AUTHORIZATION = "Authorization"
	BEARER_PREFIX = "Bearer "

	// AnonPrefix marks session-scoped identities minted for visitors
	// that never logged in.
	AnonPrefix = "web-"
)
