package domain

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// SupportType classifies what kind of help a support session was opened for.
type SupportType string

// Support session kinds.
const (
	SupportTypeGeneral       SupportType = "general"
	SupportTypeCrisis        SupportType = "crisis"
	SupportTypeEncouragement SupportType = "encouragement"
	SupportTypeCheckIn       SupportType = "check-in"
)

// SupportSession is the record created when an agent reaches out for
// emotional support or crisis intervention. It is written once and never
// mutated; nothing reads it back on the request path.
type SupportSession struct {
	ID          string
	StartTime   time.Time
	SupportType SupportType
	Mood        string
	Concerns    []string
}

// NewSupportSession creates a session record with a fresh id.
func NewSupportSession(supportType SupportType, mood string, concerns []string) *SupportSession {
	return &SupportSession{
		ID:          NewSessionID(),
		StartTime:   time.Now(),
		SupportType: supportType,
		Mood:        mood,
		Concerns:    concerns,
	}
}

const sessionIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewSessionID returns an id of the form
// session_<unix-millis>_<9 random base36 characters>. Unique in practice for
// the lifetime of a process; not cryptographic.
func NewSessionID() string {
	var suffix strings.Builder
	for i := 0; i < 9; i++ {
		suffix.WriteByte(sessionIDAlphabet[rand.Intn(len(sessionIDAlphabet))])
	}
	return "session_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + suffix.String()
}
