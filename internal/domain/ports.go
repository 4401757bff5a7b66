package domain

import "context"

// Setting keys persisted in the SettingsStore.
const (
	SettingAPIKey  = "googlePlacesApiKey"
	SettingPlaceID = "googlePlacesPlaceId"
	SettingTheme   = "reviewsCarouselTheme"
)

type ReviewSource interface {
	Load(ctx context.Context) (Payload, error)
}

// PlacesClient fetches place details from the live provider.
type PlacesClient interface {
	GetReviews(ctx context.Context, apiKey, placeID string) (Payload, error)
}

type Renderer interface {
	RenderPage(v PageView)
	RenderSummary(s Summary)
	ShowLoading(on bool)
	ShowError(msg string) // empty msg clears the error state
}

type SettingsStore interface {
	// Get reports ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Read models

type Indicator struct {
	Index  int  `json:"index"`
	Active bool `json:"active"`
}

type PageView struct {
	Reviews     ReviewSet   `json:"reviews"`
	PageIndex   int         `json:"pageIndex"`
	PageSize    int         `json:"pageSize"`
	TotalPages  int         `json:"totalPages"`
	Indicators  []Indicator `json:"indicators"`
	PrevEnabled bool        `json:"prevEnabled"`
	NextEnabled bool        `json:"nextEnabled"`
}
