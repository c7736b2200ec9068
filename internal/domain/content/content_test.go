//go:build unit
// +build unit

package content

import (
	"testing"
	"time"

	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAd(priority int) *Ad {
	return &Ad{
		ID:        uuid.NewString(),
		Title:     "Umrah packages",
		Placement: PlacementHomeTop,
		TargetURL: "https://example.com/umrah",
		IsActive:  true,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
}

func TestAd_IsLive(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-time.Hour)
	end := now.Add(time.Hour)

	ad := newAd(1)
	assert.True(t, ad.IsLive(now))

	ad.StartsAt, ad.EndsAt = &start, &end
	assert.True(t, ad.IsLive(now))
	assert.True(t, ad.IsLive(end))
	assert.False(t, ad.IsLive(end.Add(time.Second)))
	assert.False(t, ad.IsLive(start.Add(-time.Second)))

	ad.IsActive = false
	assert.False(t, ad.IsLive(now))
}

func TestAd_Validate(t *testing.T) {
	ad := newAd(1)
	require.NoError(t, ad.Validate())

	start := time.Now()
	end := start.Add(-time.Minute)
	ad.StartsAt, ad.EndsAt = &start, &end
	assert.ErrorIs(t, ad.Validate(), apperr.ErrValidation)

	ad = newAd(1)
	ad.Placement = "popup"
	assert.ErrorIs(t, ad.Validate(), apperr.ErrValidation)

	ad = newAd(1)
	ad.TargetURL = "not a url"
	assert.ErrorIs(t, ad.Validate(), apperr.ErrValidation)
}

func TestAd_CTR(t *testing.T) {
	ad := newAd(1)
	assert.Equal(t, 0.0, ad.CTR())

	ad.Impressions, ad.Clicks = 3, 1
	assert.Equal(t, 33.33, ad.CTR())

	ad.Impressions, ad.Clicks = 200, 3
	assert.Equal(t, 1.5, ad.CTR())
}

func TestSelectLive(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	low, high, mid := newAd(1), newAd(10), newAd(5)
	expired := newAd(100)
	expired.EndsAt = &past
	inactive := newAd(50)
	inactive.IsActive = false

	got := SelectLive([]*Ad{low, expired, high, inactive, mid}, now, 0)
	assert.Equal(t, []*Ad{high, mid, low}, got)

	got = SelectLive([]*Ad{low, high, mid}, now, 2)
	assert.Equal(t, []*Ad{high, mid}, got)
}

func TestMenu_ValidateAndSort(t *testing.T) {
	parent := 0
	self := 1
	menu := &Menu{
		ID:        uuid.NewString(),
		Name:      "Main",
		Location:  LocationHeader,
		CreatedAt: time.Now(),
		Items: []MenuItem{
			{Label: "Visas", URL: "/visas", SortOrder: 2},
			{Label: "Tourist", URL: "/visas/tourist", SortOrder: 1, ParentIndex: &parent},
			{Label: "Blog", URL: "/blog", SortOrder: 1},
		},
	}
	require.NoError(t, menu.Validate())

	sorted := menu.SortedItems()
	assert.Equal(t, []string{"Tourist", "Blog", "Visas"}, []string{sorted[0].Label, sorted[1].Label, sorted[2].Label})
	assert.Equal(t, "Visas", menu.Items[0].Label)

	menu.Items[1].ParentIndex = &self
	assert.ErrorIs(t, menu.Validate(), apperr.ErrValidation)
}

func TestBlogPost_SyncPublishedAt(t *testing.T) {
	now := time.Now()
	post := &BlogPost{
		ID:        uuid.NewString(),
		Title:     "Visa tips",
		Slug:      "visa-tips",
		Body:      "...",
		AuthorID:  uuid.NewString(),
		Status:    PostDraft,
		Tags:      []string{"visa"},
		CreatedAt: now,
	}
	require.NoError(t, post.Validate())

	post.SyncPublishedAt(now)
	assert.Nil(t, post.PublishedAt)

	post.Status = PostPublished
	post.SyncPublishedAt(now)
	require.NotNil(t, post.PublishedAt)
	assert.True(t, post.IsPublished())

	post.SyncPublishedAt(now.Add(time.Hour))
	assert.Equal(t, now, *post.PublishedAt)
}

func TestSeoMeta_Validate(t *testing.T) {
	meta := &SeoMeta{
		ID:        uuid.NewString(),
		Path:      "/visas/tourist",
		Title:     "Tourist visa",
		Keywords:  []string{"visa", "tourism"},
		CreatedAt: time.Now(),
	}
	assert.NoError(t, meta.Validate())

	meta.Path = "visas"
	assert.ErrorIs(t, meta.Validate(), apperr.ErrValidation)
}
