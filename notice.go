package aqualedger

import "time"

// NoticeTTL is how long an outcome notification stays current.
const NoticeTTL = 3 * time.Second

// NoticeKind distinguishes success from failure notifications.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeFailure
)

// Notice is a user-visible outcome notification with an explicit expiry
// timestamp. Every ledger operation emits exactly one; presentation
// surfaces decide how to show it and drop it once expired.
type Notice struct {
	Kind      NoticeKind
	Msg       string
	ExpiresAt time.Time
}

// Expired reports whether the notice is stale at the given instant.
func (n Notice) Expired(now time.Time) bool { return now.After(n.ExpiresAt) }

func newNotice(kind NoticeKind, msg string) Notice {
	return Notice{Kind: kind, Msg: msg, ExpiresAt: time.Now().Add(NoticeTTL)}
}

// NoticeSink receives operation outcome notifications.
type NoticeSink func(Notice)
