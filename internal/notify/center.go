package notify

import (
	"sync"
	"time"
)

// Level уровень уведомления
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification уведомление для пользователя
type Notification struct {
	ID        int64     `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center ограниченная очередь уведомлений; при переполнении вытесняются самые старые
type Center struct {
	mu     sync.Mutex
	limit  int
	nextID int64
	items  []Notification
	now    func() time.Time
}

// NewCenter создает центр уведомлений; limit <= 0 означает 100
func NewCenter(limit int) *Center {
	if limit <= 0 {
		limit = 100
	}
	return &Center{limit: limit, now: time.Now}
}

// Push добавляет уведомление и возвращает его
func (c *Center) Push(level Level, message string) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	n := Notification{ID: c.nextID, Level: level, Message: message, CreatedAt: c.now()}
	c.items = append(c.items, n)
	if over := len(c.items) - c.limit; over > 0 {
		c.items = append(c.items[:0:0], c.items[over:]...)
	}
	return n
}

// Info, Success, Warning и Error сокращения для Push
func (c *Center) Info(message string) Notification    { return c.Push(LevelInfo, message) }
func (c *Center) Success(message string) Notification { return c.Push(LevelSuccess, message) }
func (c *Center) Warning(message string) Notification { return c.Push(LevelWarning, message) }
func (c *Center) Error(message string) Notification   { return c.Push(LevelError, message) }

// List возвращает уведомления, новые первыми
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := make([]Notification, 0, len(c.items))
	for i := len(c.items) - 1; i >= 0; i-- {
		list = append(list, c.items[i])
	}
	return list
}

// Unread возвращает количество непрочитанных
func (c *Center) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, item := range c.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkAllRead помечает все уведомления прочитанными
func (c *Center) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		c.items[i].Read = true
	}
}

// Clear удаляет все уведомления
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}
