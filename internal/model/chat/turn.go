package chat

import "time"

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is a single message exchange unit owned by its session. Images are
// only meaningful on user turns and are carried as self-describing data
// URIs (or bare base64) exactly as the client sent them.
type Turn struct {
	Timestamp time.Time `json:"timestamp"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Images    []string  `json:"images,omitempty"`
}
