package domain

import (
	"fmt"
	"strings"
)

// overviewLimit is the display cutoff for catalog overviews
const overviewLimit = 50

// CatalogItem represents one purchasable entry from the remote catalog.
// Items are immutable once received from the provider; collections copy
// them, they never mutate them.
type CatalogItem struct {
	ID         int64   `json:"id"`                    // Provider-assigned identifier, unique within a response
	Title      string  `json:"title"`                 // Display title
	Rating     float64 `json:"vote_average"`          // Provider rating, 0 when unrated
	PosterPath string  `json:"poster_path,omitempty"` // Relative poster fragment, may be empty
	Overview   string  `json:"overview,omitempty"`    // Free-text synopsis, may be empty
}

// FormattedRating returns the rating for display ("N/A" when unrated)
func (c CatalogItem) FormattedRating() string {
	if c.Rating <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", c.Rating)
}

// FormattedPrice returns the display price. The storefront prices items
// off their rating, same number two decimals.
func (c CatalogItem) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", c.Rating)
}

// ShortOverview returns the overview truncated for card display
func (c CatalogItem) ShortOverview() string {
	if c.Overview == "" {
		return "No description"
	}
	runes := []rune(c.Overview)
	if len(runes) <= overviewLimit {
		return c.Overview
	}
	return string(runes[:overviewLimit]) + "..."
}

// PosterURL builds the full poster URL from the configured image base.
// Returns empty when the item has no poster.
func (c CatalogItem) PosterURL(imageBase string) string {
	if c.PosterPath == "" {
		return ""
	}
	return strings.TrimRight(imageBase, "/") + "/" + strings.TrimLeft(c.PosterPath, "/")
}

// UserRecord is the single stored account. Registration overwrites it
// wholesale; sign-in compares fields exactly.
type UserRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Persistent store keys. These four slots are the entire persisted state
// surface; cross-key atomicity is never assumed.
const (
	KeyFavorites = "favorites"
	KeyOrders    = "orders"
	KeySession   = "session"
	KeyUser      = "user"
)
