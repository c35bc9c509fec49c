package cmd

import (
	"fmt"
	"strings"

	"github.com/aeliyag/reinforcedLearning/internal/adapters/socket"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// formatDecision formats a recommendation for terminal display.
//
//	jump_trouble → B  (state C:0)
//	review_recent → E  [E D A]  (state C:0)
func formatDecision(result *socket.DecideResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s%s%s → %s%s%s",
		colorBold, result.Action, colorReset,
		colorCyan, result.Target.Letter, colorReset))
	if len(result.Target.List) > 0 {
		sb.WriteString(fmt.Sprintf("  %s[%s]%s", colorGreen, strings.Join(result.Target.List, " "), colorReset))
	}
	sb.WriteString(fmt.Sprintf("  %s(state %s)%s\n", colorGray, result.StateKey, colorReset))
	return sb.String()
}

// formatStats formats the table summary for terminal display.
func formatStats(stats *socket.StatsResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%sstates%s     %d\n", colorBold, colorReset, stats.StateCount))
	sb.WriteString(fmt.Sprintf("%sentries%s    %d\n", colorBold, colorReset, stats.EntryCount))
	sb.WriteString(fmt.Sprintf("%sdecisions%s  %d\n", colorBold, colorReset, stats.DecisionCount))
	sb.WriteString(fmt.Sprintf("%sfeedbacks%s  %d\n", colorBold, colorReset, stats.FeedbackCount))
	sb.WriteString(fmt.Sprintf("%suptime%s     %s\n", colorBold, colorReset, stats.Uptime))
	if len(stats.TopStates) > 0 {
		sb.WriteString(fmt.Sprintf("%stop states%s\n", colorBold, colorReset))
		for _, st := range stats.TopStates {
			sb.WriteString(fmt.Sprintf("  %s%s%s  %s%s%s = %.3f\n",
				colorCyan, st.StateKey, colorReset,
				colorYellow, st.BestAction, colorReset,
				st.BestValue))
		}
	}
	return sb.String()
}

// formatHealth formats a health response for terminal display.
func formatHealth(health *socket.HealthResult) string {
	return fmt.Sprintf("%s%s%s │ %s │ %d states │ up %s\n",
		colorGreen, health.Status, colorReset,
		health.Service, health.StateCount, health.Uptime)
}
