package notify

import "github.com/apex/log"

type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantDestructive Variant = "destructive"
)

// Notification is a user-visible toast. Delivery is fire-and-forget; the
// workflow never waits on an acknowledgement.
type Notification struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Variant     Variant `json:"variant"`
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier delivers notifications to the process log. It is the sink
// used by the daemon, where there is no attached UI session.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	switch n.Variant {
	case VariantDestructive:
		log.Errorf("%s: %s", n.Title, n.Description)
	default:
		log.Infof("%s: %s", n.Title, n.Description)
	}
}
