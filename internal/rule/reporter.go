package rule

import (
	"encoding/json"
	"fmt"
	"strings"
)

// messageHeader prefixes every aggregated diagnostic.
const messageHeader = "Some configurations declare banned repositories:"

// FormatMessage builds the aggregated diagnostic for a failed evaluation:
// a fixed header, one line per violation, and the configured message (if
// any) at the end. Returns "" when the evaluation passed.
func FormatMessage(result Result, cfg Config) string {
	if result.Passed || len(result.Violations) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(messageHeader + "\n")
	for _, v := range result.Violations {
		sb.WriteString(formatViolation(v) + "\n")
	}

	if cfg.Message != "" {
		sb.WriteString(cfg.Message + "\n")
	}

	return sb.String()
}

// formatViolation renders one violation line.
func formatViolation(v Violation) string {
	return fmt.Sprintf("%s:%s version:%s has %s [%s]",
		v.GroupID, v.ArtifactID, v.Version, v.Category, strings.Join(v.BannedIDs, ", "))
}

// FormatCLI formats violations for terminal output.
func FormatCLI(result Result, cfg Config) string {
	if result.Passed || len(result.Violations) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("❌ " + FormatMessage(result, cfg))
	sb.WriteString(fmt.Sprintf("\nBuild blocked: %d violation(s)\n", len(result.Violations)))
	return sb.String()
}

// FormatCI formats violations as GitHub Actions error annotations.
func FormatCI(result Result, cfg Config) string {
	if result.Passed || len(result.Violations) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, v := range result.Violations {
		sb.WriteString(fmt.Sprintf("::error::%s\n", formatViolation(v)))
	}
	sb.WriteString(fmt.Sprintf("\n❌ Banned repositories found: %d violation(s)\n", len(result.Violations)))
	if cfg.Message != "" {
		sb.WriteString(cfg.Message + "\n")
	}
	return sb.String()
}

// FormatJSON formats the evaluation result as JSON.
func FormatJSON(result Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
