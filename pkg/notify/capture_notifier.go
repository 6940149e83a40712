package notify

import "sync"

// CaptureNotifier records notifications so tests can assert on what the
// user would have seen.
type CaptureNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewCaptureNotifier() *CaptureNotifier {
	return &CaptureNotifier{}
}

func (c *CaptureNotifier) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications = append(c.notifications, n)
}

func (c *CaptureNotifier) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	captured := make([]Notification, len(c.notifications))
	copy(captured, c.notifications)
	return captured
}

func (c *CaptureNotifier) Last() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.notifications) == 0 {
		return Notification{}, false
	}
	return c.notifications[len(c.notifications)-1], true
}
