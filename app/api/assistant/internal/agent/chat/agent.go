package chat

import (
	"context"
	"errors"
	"strings"

	"drip/app/api/assistant/internal/agent/intent"
	"drip/app/api/assistant/internal/backend"

	"github.com/zeromicro/go-zero/core/logx"
)

const historyWindow = 10

// ErrEmptyMessage is returned for whitespace-only submissions, which must
// leave the transcript untouched.
var ErrEmptyMessage = errors.New("empty message")

// Agent orchestrates one conversation turn: it appends the user message,
// routes to the recommendation or general-chat path, and appends exactly one
// assistant reply per submission, apologetic on failure.
type Agent struct {
	backend *backend.Client
}

func NewAgent(cli *backend.Client) *Agent {
	return &Agent{backend: cli}
}

// Turn is the pair of transcript entries a submission produced.
type Turn struct {
	User      Message
	Assistant Message
	// Recommend reports which path the turn took; Failed whether the
	// assistant reply is an apology.
	Recommend bool
	Failed    bool
}

// Send runs one user submission against the session. The bearer token, when
// present, is forwarded to the recommendation endpoint only.
func (a *Agent) Send(ctx context.Context, conv *Conversation, text, token string) (*Turn, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	// General chat wants the transcript as it stood before this
	// submission, so capture the window before appending.
	history := conv.historyTail(historyWindow)

	userMsg := newMessage(RoleUser, text)
	conv.append(userMsg)

	turn := &Turn{User: userMsg, Recommend: IsOutfitRequest(text)}
	if turn.Recommend {
		turn.Assistant, turn.Failed = a.recommendTurn(ctx, conv, text, token)
	} else {
		turn.Assistant, turn.Failed = a.chatTurn(ctx, text, history)
	}
	conv.append(turn.Assistant)
	return turn, nil
}

func (a *Agent) recommendTurn(ctx context.Context, conv *Conversation, text, token string) (Message, bool) {
	it := intent.Classify(text, conv.priorIntent())

	styles := it.StylePreferences
	if styles == nil {
		styles = []string{}
	}
	req := &backend.RecommendRequest{
		UserID:           conv.UserID,
		Occasion:         optional(it.Occasion),
		StylePreferences: styles,
		Budget:           optional(it.Budget),
		ImageBase64:      nil,
		ExtraContext: backend.ExtraContext{
			UserMessage:           text,
			IsBudgetFollowup:      it.IsBudgetFollowup,
			IsAccessoriesFollowup: it.IsAccessoriesFollowup,
			LastOutfitID:          conv.lastOutfitID(),
		},
	}

	resp, err := a.backend.Recommend(ctx, token, req)
	if err != nil {
		logx.WithContext(ctx).Errorf("stylist recommend failed: session=%s err=%v", conv.ID, err)
		return newMessage(RoleAssistant, recommendApology), true
	}

	mapped := mapRecommendation(resp, it)
	msg := newMessage(RoleAssistant, mapped.message)
	msg.OutfitPreview = mapped.preview
	msg.RecommendedOutfit = mapped.recommendedOutfit
	msg.Alternatives = mapped.alternatives

	conv.rememberStylist(it, resp)
	return msg, false
}

func (a *Agent) chatTurn(ctx context.Context, text string, history []backend.ChatTurn) (Message, bool) {
	resp, err := a.backend.Chat(ctx, &backend.ChatRequest{
		Message: text,
		History: history,
	})
	if err != nil || resp.Reply == "" {
		logx.WithContext(ctx).Errorf("stylist chat failed: err=%v", err)
		return newMessage(RoleAssistant, chatApology), true
	}

	msg := newMessage(RoleAssistant, resp.Reply)
	msg.Suggestions = chatSuggestions
	return msg, false
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
