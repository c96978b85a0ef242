package models

import "time"

// User represents a registered user with their assigned frequency
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	State     string    `json:"state"`
	City      string    `json:"city"`
	Phone     string    `json:"phone"`
	Frequency string    `json:"frequency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// User status values. Nothing transitions a user away from online today;
// offline exists for wire compatibility.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Connection records a successful frequency match between two users.
// The relation is symmetric; User1/User2 only preserve initiator order.
type Connection struct {
	ID        string    `json:"id"`
	User1     string    `json:"user1"`
	User2     string    `json:"user2"`
	Frequency string    `json:"frequency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConnectionStatusActive is the only connection status; connections are
// never deactivated or deleted.
const ConnectionStatusActive = "active"

// Photo represents an uploaded photo. UserName is denormalized at upload
// time and not kept in sync with the owning user.
type Photo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Caption   string    `json:"caption"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message represents a direct message between two users. Sender and
// receiver names are denormalized at send time. Read is always false;
// no operation marks messages as read.
type Message struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"senderId"`
	SenderName   string    `json:"senderName"`
	ReceiverID   string    `json:"receiverId"`
	ReceiverName string    `json:"receiverName"`
	Content      string    `json:"content"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Stats is a point-in-time snapshot of the collection counters.
type Stats struct {
	TotalUsers       int       `json:"totalUsers"`
	ActiveUsers      int       `json:"activeUsers"`
	TotalConnections int       `json:"totalConnections"`
	TotalPhotos      int       `json:"totalPhotos"`
	TotalMessages    int       `json:"totalMessages"`
	Timestamp        time.Time `json:"timestamp"`
}
