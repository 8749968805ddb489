package domain

import "time"

// BlogCategories is the fixed set of categories a post can belong to.
var BlogCategories = []string{
	"Web Security",
	"Network Security",
	"Penetration Testing",
	"Malware Analysis",
	"CTF",
	"Research",
	"Tools",
	"Other",
}

type Blog struct {
	Id          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	BlogURL     string    `json:"blogUrl,omitempty"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
	ReadTime    int       `json:"readTime"` // estimated minutes
	Views       int64     `json:"views"`
	Likes       int64     `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidBlogCategory(category string) bool {
	for _, c := range BlogCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Pagination describes one page of a paginated listing.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}
