// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	Backend BackendConf

	Auth AuthConf

	KafkaConf KafkaConf

	Session SessionConf
}

// BackendConf points at the external stylist backend that owns all the
// business logic this gateway fronts.
type BackendConf struct {
	BaseURL string
}

// AuthConf carries the HS256 secret shared with the backend's token issuer.
// Leaving it empty disables authenticated identity; chat still works
// anonymously.
type AuthConf struct {
	AccessSecret string `json:",optional"`
}

// KafkaConf configures the optional per-turn analytics events. Empty broker
// list disables publishing.
type KafkaConf struct {
	Broker    []string `json:",optional"`
	TurnTopic string   `json:",optional"`
}

type SessionConf struct {
	IdleTTL time.Duration `json:",default=30m"`
}
