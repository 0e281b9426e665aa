package view

import (
	"sync"
	"time"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// NoticeTTL is how long a notice stays up unless dismissed earlier.
const NoticeTTL = 5 * time.Second

var noticeColors = map[NoticeKind]string{
	NoticeSuccess: "#10B981",
	NoticeError:   "#EF4444",
	NoticeInfo:    "#3B82F6",
}

type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
	Color   string     `json:"color"`
}

// NewNotice builds a notice; unknown kinds fall back to info.
func NewNotice(kind NoticeKind, message string) Notice {
	color, ok := noticeColors[kind]
	if !ok {
		kind, color = NoticeInfo, noticeColors[NoticeInfo]
	}
	return Notice{Kind: kind, Message: message, Color: color}
}

// NoticeStyles exposes the kind-to-color table to the page shell.
func NoticeStyles() map[NoticeKind]string {
	out := make(map[NoticeKind]string, len(noticeColors))
	for k, v := range noticeColors {
		out[k] = v
	}
	return out
}

// Notifier holds at most one notice. Showing a notice evicts the current
// one; a notice expires NoticeTTL after it was shown.
type Notifier struct {
	mu      sync.Mutex
	now     func() time.Time
	current *Notice
	expires time.Time
}

func NewNotifier(now func() time.Time) *Notifier {
	if now == nil {
		now = time.Now
	}
	return &Notifier{now: now}
}

func (n *Notifier) Show(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = &notice
	n.expires = n.now().Add(NoticeTTL)
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}

// Current returns the visible notice, if any.
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	if !n.now().Before(n.expires) {
		n.current = nil
		return Notice{}, false
	}
	return *n.current, true
}
