package sessions

import "time"

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one profiling conversation. It lives only in the store and is
// dropped once its TTL passes.
type Session struct {
	ID             string    `json:"session_id"`
	StudentName    string    `json:"student_name,omitempty"`
	CurrentSection string    `json:"current_section"`
	Progress       int       `json:"progress"`
	Messages       []Message `json:"messages"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}
