package model

import "time"

// Prompt is a styling challenge shown to the player before the countdown starts.
type Prompt struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultPrompt is served when no prompt has been stored yet.
func DefaultPrompt() Prompt {
	return Prompt{
		ID:          "default",
		Title:       "Summer Beach Glam",
		Description: "Create a stunning beach outfit that combines comfort with high fashion. Think flowing fabrics, sun protection, and Instagram-worthy style.",
		Category:    "Casual",
		Difficulty:  "Medium",
		Keywords:    []string{"beach", "summer", "flowing", "comfortable", "stylish", "sunglasses", "hat"},
	}
}

// FashionCard is an admin-curated, magazine-style reference look.
type FashionCard struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ImageURL         string    `json:"image_url"`
	Designer         string    `json:"designer"`
	Brand            string    `json:"brand"`
	StyleDescription string    `json:"style_description"`
	CreatedAt        time.Time `json:"created_at"`
}
