package mq

import "time"

// Turn paths as they appear in the analytics stream.
const (
	PathRecommend = "recommend"
	PathChat      = "chat"
)

// TurnEvent is the payload published per completed assistant turn for
// downstream analytics. It carries no message content.
type TurnEvent struct {
	SessionId string    `json:"session_id"`
	UserId    string    `json:"user_id"`
	Path      string    `json:"path"`
	Failed    bool      `json:"failed"`
	At        time.Time `json:"at"`
}
