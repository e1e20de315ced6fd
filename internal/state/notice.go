package state

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityHit     Severity = "hit"
	SeverityMiss    Severity = "miss"
)

var severityColors = map[Severity]string{
	SeveritySuccess: "#28A745",
	SeverityError:   "#D32F2F",
	SeverityInfo:    "#007BFF",
	SeverityWarning: "#F39C12",
	SeverityHit:     "#1ABC9C",
	SeverityMiss:    "#E74C3C",
}

// Color maps a severity to its toast colour. Unknown severities use the
// success colour.
func (s Severity) Color() string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[SeveritySuccess]
}

// Notice is a transient user-facing status message.
type Notice struct {
	Severity Severity
	Text     string
}
