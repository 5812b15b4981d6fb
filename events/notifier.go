package events

import "sync"

// Listener receives authentication state changes. Implementations must not
// block; notifications are delivered synchronously on the calling goroutine.
type Listener interface {
	// OnLogin fires after a user successfully authenticates.
	OnLogin(sessionID, userID string)
	// OnLogout fires when the user's credentials are cleared, including
	// forced logouts triggered by an upstream 401.
	OnLogout(sessionID string)
}

// Notifier fans authentication events out to registered listeners. It
// replaces implicit window-event style broadcasting with an explicit
// observer list so every subscriber is visible at wiring time.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Register(l Listener) {
	if l == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, l)
}

func (n *Notifier) NotifyLogin(sessionID, userID string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, l := range n.listeners {
		l.OnLogin(sessionID, userID)
	}
}

func (n *Notifier) NotifyLogout(sessionID string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, l := range n.listeners {
		l.OnLogout(sessionID)
	}
}
