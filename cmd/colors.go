package cmd

import (
	"strings"

	"github.com/fatih/color"
)

var (
	colorSafe = color.New(color.FgGreen).SprintFunc()
	colorVuln = color.New(color.FgRed).SprintFunc()
	colorInfo = color.New(color.FgCyan).SprintFunc()
	colorWarn = color.New(color.FgYellow).SprintFunc()
)

func formatOutcomeWithColor(outcome string) string {
	switch strings.ToLower(outcome) {
	case "safe", "pass", "ok":
		return colorSafe(outcome)
	case "vulnerable", "fail", "failed":
		return colorVuln(outcome)
	case "warn", "warning":
		return colorWarn(outcome)
	default:
		return outcome
	}
}
