package chat

import (
	"time"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

// Session captures a transient anonymous conversation and its cultural
// setting.
type Session struct {
	ID        string          `json:"id"`
	Context   emotion.Context `json:"culturalContext"`
	CreatedAt time.Time       `json:"createdAt"`
}
