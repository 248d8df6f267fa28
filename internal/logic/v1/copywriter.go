package v1

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
)

// platformTemplates map each platform to its copy skeleton. {keyword} and
// {emotion} are substituted at generation time.
var platformTemplates = map[string]string{
	domain.PlatformXiaohongshu: "✨ {keyword} is absolutely stunning!\n\n" +
		"The {emotion} sea against an orange sunset — the most healing view there is.\n\n" +
		"Life is more than the daily grind; there are poems and distant fields too.\n\n" +
		"#travel #scenery #healing #{keyword}",
	domain.PlatformWeChat: "Today's share: {keyword}\n\n" +
		"Arrived at {keyword} today and it is breathtaking.\n\n" +
		"The {emotion} scenery washes all the work fatigue away. Sometimes a trip " +
		"needs no reason, only a heart ready to leave.\n\n" +
		"Location: {keyword}",
	domain.PlatformWeibo: "Today's dose of beauty: {keyword} — {emotion}\n\n" +
		"Azure sea, orange dusk, the most healing frame of the day.\n\n" +
		"#travel #scenery #healing #{keyword}",
}

// emotionWords maps the slider stops to a tone word; levels between stops
// fall back to "lovely".
var emotionWords = map[int]string{
	0:   "melancholy",
	25:  "tranquil",
	50:  "healing",
	75:  "exhilarating",
	100: "passionate",
}

// Copywriter is the copywriting store: generated results, a current
// selection, and the draft inputs (platform, keywords, emotion level,
// images) used by Regenerate. Generation synthesizes deterministic
// placeholder copy; the AI endpoint is not wired.
type Copywriter struct {
	logger zerolog.Logger

	mu         sync.Mutex
	results    []domain.CopywritingResult
	current    *domain.CopywritingResult
	generating bool

	platform     string
	keywords     string
	emotionLevel int
	images       []string
}

// NewCopywriter creates an empty copywriting store with xiaohongshu
// preselected and the emotion slider centered.
func NewCopywriter(logger zerolog.Logger) *Copywriter {
	return &Copywriter{
		logger:       logger,
		platform:     domain.PlatformXiaohongshu,
		emotionLevel: 50,
	}
}

// Generate renders platform copy from the request and prepends the result.
func (c *Copywriter) Generate(ctx context.Context, req domain.CopywritingRequest) (*domain.CopywritingResult, error) {
	tmpl, ok := platformTemplates[req.Platform]
	if !ok {
		return nil, fmt.Errorf("generate copywriting for %q: %w", req.Platform, ErrUnknownPlatform)
	}

	c.mu.Lock()
	c.generating = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.generating = false
		c.mu.Unlock()
	}()

	keyword := strings.Join(req.Keywords, ", ")
	if keyword == "" {
		keyword = "sunset"
	}
	emotion, ok := emotionWords[req.EmotionLevel]
	if !ok {
		emotion = "lovely"
	}

	content := strings.ReplaceAll(tmpl, "{keyword}", keyword)
	content = strings.ReplaceAll(content, "{emotion}", emotion)

	result := domain.CopywritingResult{
		ID:        uuid.NewString(),
		Content:   content,
		Platform:  req.Platform,
		Keywords:  req.Keywords,
		Images:    req.Images,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.results = append([]domain.CopywritingResult{result}, c.results...)
	c.current = &c.results[0]
	c.mu.Unlock()

	c.logger.Debug().Str("platform", req.Platform).Str("result_id", result.ID).Msg("Copy generated")
	out := result
	return &out, nil
}

// Regenerate runs Generate with the held draft inputs. The raw keyword
// string splits on commas; blanks are dropped.
func (c *Copywriter) Regenerate(ctx context.Context) (*domain.CopywritingResult, error) {
	c.mu.Lock()
	req := domain.CopywritingRequest{
		Platform:     c.platform,
		EmotionLevel: c.emotionLevel,
		Images:       append([]string(nil), c.images...),
	}
	for _, k := range strings.Split(c.keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			req.Keywords = append(req.Keywords, k)
		}
	}
	c.mu.Unlock()

	return c.Generate(ctx, req)
}

// SetPlatform selects the draft platform.
func (c *Copywriter) SetPlatform(platform string) error {
	if _, ok := platformTemplates[platform]; !ok {
		return fmt.Errorf("select platform %q: %w", platform, ErrUnknownPlatform)
	}
	c.mu.Lock()
	c.platform = platform
	c.mu.Unlock()
	return nil
}

// SetKeywords stores the raw comma-separated keyword draft.
func (c *Copywriter) SetKeywords(raw string) {
	c.mu.Lock()
	c.keywords = raw
	c.mu.Unlock()
}

// SetEmotionLevel stores the draft emotion level (0-100).
func (c *Copywriter) SetEmotionLevel(level int) {
	c.mu.Lock()
	c.emotionLevel = level
	c.mu.Unlock()
}

// AddImages registers uploaded image references on the draft. The upload
// endpoint is not wired; references are adopted as-is.
func (c *Copywriter) AddImages(refs ...string) {
	c.mu.Lock()
	c.images = append(c.images, refs...)
	c.mu.Unlock()
}

// RemoveImage drops the draft image at index; out-of-range indices are
// ignored.
func (c *Copywriter) RemoveImage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.images) {
		return
	}
	c.images = append(c.images[:index], c.images[index+1:]...)
}

// FetchResults adopts the backend's history. With the endpoint unwired the
// mock result is empty, so the local history resets.
func (c *Copywriter) FetchResults(ctx context.Context) ([]domain.CopywritingResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = nil
	c.current = nil
	return nil, nil
}

// DeleteResult removes a result from the history. Deleting an unknown id is
// not an error; the current selection is cleared when it matches.
func (c *Copywriter) DeleteResult(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.results[:0]
	for _, r := range c.results {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.results = kept

	if c.current != nil && c.current.ID == id {
		c.current = nil
	}
	return nil
}

// Results returns a snapshot of the history, newest first.
func (c *Copywriter) Results() []domain.CopywritingResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CopywritingResult, len(c.results))
	copy(out, c.results)
	return out
}

// Current returns a copy of the selected result, or nil.
func (c *Copywriter) Current() *domain.CopywritingResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	out := *c.current
	return &out
}

// IsGenerating reports whether a generation run is in flight.
func (c *Copywriter) IsGenerating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generating
}
