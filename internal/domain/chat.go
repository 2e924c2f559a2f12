package domain

// ChatSender identifies who authored a chat message.
type ChatSender string

const (
	// SenderUser is the parent using the site.
	SenderUser ChatSender = "user"
	// SenderAttorney is the matched attorney.
	SenderAttorney ChatSender = "attorney"
)

// ChatMessage is a single conversation entry. Messages live only in page and
// connection memory; nothing is persisted.
type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp string     `json:"timestamp"`
}
