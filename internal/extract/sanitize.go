package extract

import "strings"

// SanitizeOutput reduces the parser's merged stdout/stderr to the best-effort
// JSON candidate. Diagnostic lines (library warnings, startup chatter) get
// interleaved with the payload, so the scan drops everything before the first
// line that opens a JSON object and drops warning-tagged lines throughout.
func SanitizeOutput(raw string) string {
	var kept []string
	seenJSON := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if !seenJSON {
			if !strings.HasPrefix(trimmed, "{") {
				continue
			}
			seenJSON = true
		}
		if isWarningLine(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func isWarningLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.HasPrefix(lower, "warning:") || strings.HasPrefix(lower, "warn:")
}

func hasErrorMarker(sanitized string) bool {
	return strings.HasPrefix(sanitized, `{"error"`)
}
