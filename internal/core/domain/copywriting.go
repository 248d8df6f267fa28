package domain

import "time"

// Social platforms supported by the copywriting generator.
const (
	PlatformXiaohongshu = "xiaohongshu"
	PlatformWeChat      = "wechat"
	PlatformWeibo       = "weibo"
)

// CopywritingRequest describes one generation run.
type CopywritingRequest struct {
	Platform     string   `json:"platform"`
	Keywords     []string `json:"keywords"`
	EmotionLevel int      `json:"emotion_level"`
	Images       []string `json:"images,omitempty"`
}

// CopywritingResult is one generated piece of social copy.
type CopywritingResult struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Platform  string    `json:"platform"`
	Keywords  []string  `json:"keywords"`
	Images    []string  `json:"images,omitempty"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
