package models

type GalleryItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Year        string `json:"year"`
	Event       string `json:"event"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Caption     string `json:"caption,omitempty"`
	Featured    bool   `json:"featured,omitempty"`
}

type GalleryDocument struct {
	Gallery []GalleryItem `json:"gallery"`
}

type GalleryStats struct {
	Images int `json:"images"`
	Events int `json:"events"`
	Years  int `json:"years"`
}
