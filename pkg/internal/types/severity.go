package types

import "strings"

// Severity classifies a forwarded event. The four values are totally ordered by urgency.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

var severityNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// Severities lists every severity in increasing order.
func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarn, SeverityError}
}

// String returns the upper-case wire name of the severity.
func (s Severity) String() string {
	if !s.Valid() {
		return ""
	}
	return severityNames[s]
}

// Valid reports whether s is one of the four defined severities.
func (s Severity) Valid() bool {
	return s >= SeverityDebug && s <= SeverityError
}

// ParseSeverity resolves a severity name case-insensitively.
func ParseSeverity(name string) (Severity, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == upper {
			return Severity(i), true
		}
	}
	return SeverityDebug, false
}
