package telegram

import (
	"fmt"
	"strings"
	"time"
)

// AlertKind identifies which price level a watchlist alert fired on.
type AlertKind string

const (
	TriggerHit   AlertKind = "trigger"
	StopBreached AlertKind = "stop_loss"
)

// PlanAlert carries everything the formatter needs about a fired alert.
type PlanAlert struct {
	Symbol     string
	Direction  string
	Kind       AlertKind
	Price      float64
	Level      float64
	Conviction int
	SetupType  string
	Thesis     string
	At         time.Time
}

// FormatPlanAlert renders a watchlist plan alert as a Telegram Markdown message.
func FormatPlanAlert(a PlanAlert) string {
	var b strings.Builder

	switch a.Kind {
	case TriggerHit:
		b.WriteString(fmt.Sprintf("🎯 *Entry Trigger Hit: %s*\n", a.Symbol))
	case StopBreached:
		b.WriteString(fmt.Sprintf("🛑 *Stop Level Breached: %s*\n", a.Symbol))
	default:
		b.WriteString(fmt.Sprintf("🔔 *Price Alert: %s*\n", a.Symbol))
	}

	b.WriteString(fmt.Sprintf("📐 *Direction:* %s\n", strings.ToUpper(a.Direction)))
	b.WriteString(fmt.Sprintf("💵 *Price:* %.2f (level %.2f)\n", a.Price, a.Level))
	if a.SetupType != "" {
		b.WriteString(fmt.Sprintf("📋 *Setup:* %s\n", a.SetupType))
	}
	if a.Conviction > 0 {
		b.WriteString(fmt.Sprintf("⭐ *Conviction:* %s\n", strings.Repeat("★", a.Conviction)))
	}
	if a.Thesis != "" {
		thesis := a.Thesis
		if len(thesis) > 200 {
			thesis = thesis[:200] + "…"
		}
		b.WriteString(fmt.Sprintf("💬 *Thesis:* %s\n", thesis))
	}
	b.WriteString(fmt.Sprintf("🕒 %s", a.At.Format("2006-01-02 15:04:05 MST")))

	return b.String()
}
