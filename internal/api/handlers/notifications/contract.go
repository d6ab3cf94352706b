package notifications

import "github.com/m04kA/SMC-SalonAgenda/internal/notify"

type NotificationCenter interface {
	List() []notify.Notification
	Unread() int
	MarkAllRead()
	Clear()
}
