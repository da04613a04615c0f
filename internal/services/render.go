package services

import (
	"fmt"

	"github.com/baharkarakas/minivenmo/internal/models"
)

// Render formats one activity as a feed line. Unknown types render as "".
func Render(v models.ActivityView) string {
	switch v.Type {
	case models.ActivityPayment:
		amount, desc := "0.00", ""
		if v.Amount != nil {
			amount = v.Amount.StringFixed(2)
		}
		if v.Description != nil {
			desc = *v.Description
		}
		return fmt.Sprintf("%s paid %s $%s for %s", v.ActorName, v.TargetName, amount, desc)
	case models.ActivityFriendship:
		return fmt.Sprintf("%s added %s as a friend", v.ActorName, v.TargetName)
	}
	return ""
}

func RenderAll(views []models.ActivityView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		if line := Render(v); line != "" {
			out = append(out, line)
		}
	}
	return out
}
