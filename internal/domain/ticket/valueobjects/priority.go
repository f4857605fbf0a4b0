package valueobjects

import (
	"fmt"

	"github.com/sevendesk/helpdesk/internal/shared/utils/enumutil"
)

type Priority string

const (
	PriorityLow    Priority = "BAIXA"
	PriorityMedium Priority = "MÉDIA"
	PriorityHigh   Priority = "ALTA"
)

// unaccentedMedium is accepted on input from clients that cannot send the accent.
const unaccentedMedium = "MEDIA"

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// NewPriority parses s case-insensitively; "media" maps to PriorityMedium.
func NewPriority(s string) (Priority, error) {
	n := enumutil.Normalize(s)
	if n == unaccentedMedium {
		return PriorityMedium, nil
	}
	p := Priority(n)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
