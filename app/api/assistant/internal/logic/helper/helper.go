package helper

import (
	"time"

	"drip/app/api/assistant/internal/agent/chat"
	"drip/app/api/assistant/internal/backend"
	"drip/app/api/assistant/internal/types"
)

func ToMessages(msgs []chat.Message) []types.Message {
	out := make([]types.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ToMessage(m))
	}
	return out
}

func ToMessage(m chat.Message) types.Message {
	msg := types.Message{
		Id:          m.ID,
		Role:        m.Role,
		Content:     m.Content,
		Timestamp:   m.Timestamp.Format(time.RFC3339),
		Suggestions: m.Suggestions,
	}
	if m.OutfitPreview != nil {
		msg.OutfitPreview = &types.OutfitPreview{
			Name:  m.OutfitPreview.Name,
			Image: m.OutfitPreview.Image,
			Items: m.OutfitPreview.Items,
		}
	}
	if m.RecommendedOutfit != nil {
		outfit := toOutfit(*m.RecommendedOutfit)
		msg.RecommendedOutfit = &outfit
	}
	for _, alt := range m.Alternatives {
		msg.Alternatives = append(msg.Alternatives, toOutfit(alt))
	}
	return msg
}

func toOutfit(o backend.Outfit) types.Outfit {
	out := types.Outfit{
		OutfitId: o.OutfitID,
		Image:    o.Image,
		Palette:  o.Palette,
		Tags:     o.Tags,
	}
	out.Items = make([]types.OutfitItem, 0, len(o.Items))
	for _, item := range o.Items {
		out.Items = append(out.Items, types.OutfitItem{
			Category: item.Category,
			Name:     item.Name,
			Colors:   item.Colors,
			Tags:     item.Tags,
			Price:    item.Price,
			Brand:    item.Brand,
			Image:    item.Image,
		})
	}
	return out
}
