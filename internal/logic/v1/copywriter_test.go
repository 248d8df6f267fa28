package v1_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
	v1 "github.com/arx-shy/AI-Travel-Planner-Pro/internal/logic/v1"
)

func TestCopywriter_Generate(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())

	result, err := c.Generate(context.Background(), domain.CopywritingRequest{
		Platform:     domain.PlatformXiaohongshu,
		Keywords:     []string{"Santorini"},
		EmotionLevel: 75,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, domain.PlatformXiaohongshu, result.Platform)
	assert.Contains(t, result.Content, "Santorini")
	assert.Contains(t, result.Content, "exhilarating")
	assert.NotContains(t, result.Content, "{keyword}")
	assert.NotContains(t, result.Content, "{emotion}")

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, result.ID, current.ID)
	assert.False(t, c.IsGenerating())
}

func TestCopywriter_GenerateDefaults(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())

	// No keywords falls back to "sunset"; an off-stop emotion level falls
	// back to "lovely".
	result, err := c.Generate(context.Background(), domain.CopywritingRequest{
		Platform:     domain.PlatformWeibo,
		EmotionLevel: 42,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "sunset")
	assert.Contains(t, result.Content, "lovely")
}

func TestCopywriter_GenerateUnknownPlatform(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	_, err := c.Generate(context.Background(), domain.CopywritingRequest{Platform: "tiktok"})
	require.ErrorIs(t, err, v1.ErrUnknownPlatform)
}

func TestCopywriter_GeneratePrependsHistory(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())

	first, err := c.Generate(context.Background(), domain.CopywritingRequest{Platform: domain.PlatformWeChat})
	require.NoError(t, err)
	second, err := c.Generate(context.Background(), domain.CopywritingRequest{Platform: domain.PlatformWeibo})
	require.NoError(t, err)

	results := c.Results()
	require.Len(t, results, 2)
	assert.Equal(t, second.ID, results[0].ID)
	assert.Equal(t, first.ID, results[1].ID)
}

func TestCopywriter_RegenerateUsesDraft(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	require.NoError(t, c.SetPlatform(domain.PlatformWeChat))
	c.SetKeywords(" Kyoto , , cherry blossom ")
	c.SetEmotionLevel(0)

	result, err := c.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformWeChat, result.Platform)
	assert.Equal(t, []string{"Kyoto", "cherry blossom"}, result.Keywords)
	assert.Contains(t, result.Content, "Kyoto, cherry blossom")
	assert.Contains(t, result.Content, "melancholy")
}

func TestCopywriter_SetPlatformUnknown(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	err := c.SetPlatform("myspace")
	require.ErrorIs(t, err, v1.ErrUnknownPlatform)

	// The draft keeps the default platform after the rejected switch.
	result, err := c.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PlatformXiaohongshu, result.Platform)
}

func TestCopywriter_DraftImages(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	c.AddImages("a.jpg", "b.jpg", "c.jpg")
	c.RemoveImage(1)
	c.RemoveImage(99) // out of range, ignored

	result, err := c.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, result.Images)
}

func TestCopywriter_FetchResultsResets(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	_, err := c.Generate(context.Background(), domain.CopywritingRequest{Platform: domain.PlatformWeibo})
	require.NoError(t, err)

	results, err := c.FetchResults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, c.Results())
	assert.Nil(t, c.Current())
}

func TestCopywriter_DeleteResult(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	first, err := c.Generate(context.Background(), domain.CopywritingRequest{Platform: domain.PlatformWeibo})
	require.NoError(t, err)
	second, err := c.Generate(context.Background(), domain.CopywritingRequest{Platform: domain.PlatformWeChat})
	require.NoError(t, err)

	require.NoError(t, c.DeleteResult(context.Background(), second.ID))
	results := c.Results()
	require.Len(t, results, 1)
	assert.Equal(t, first.ID, results[0].ID)
	assert.Nil(t, c.Current(), "deleting the selected result clears the selection")

	require.NoError(t, c.DeleteResult(context.Background(), "no-such-id"))
}

func TestCopywriter_AllPlatformsRender(t *testing.T) {
	c := v1.NewCopywriter(zerolog.Nop())
	for _, platform := range []string{domain.PlatformXiaohongshu, domain.PlatformWeChat, domain.PlatformWeibo} {
		result, err := c.Generate(context.Background(), domain.CopywritingRequest{
			Platform:     platform,
			Keywords:     []string{"Bali"},
			EmotionLevel: 100,
		})
		require.NoError(t, err, platform)
		assert.False(t, strings.Contains(result.Content, "{"), "%s template fully substituted", platform)
	}
}
