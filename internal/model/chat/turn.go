package chat

import (
	"time"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

// Turn records one processed message: what the user said, how it was
// classified and what the bot replied. Append-only once recorded.
type Turn struct {
	ID             string                 `json:"id"`
	SessionID      string                 `json:"sessionId"`
	Index          int                    `json:"index"`
	UserText       string                 `json:"userText"`
	Classification emotion.Classification `json:"classification"`
	Response       string                 `json:"response"`
	FollowUp       string                 `json:"followUp,omitempty"`
	ResponseType   string                 `json:"responseType"`
	TemplateKey    string                 `json:"templateKey,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
}
