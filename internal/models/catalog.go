package models

import (
	"time"

	"gorm.io/gorm"
)

type Service struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       int       `gorm:"not null" json:"price"`
	ImageURL    string    `gorm:"not null" json:"imageUrl"`
	ImageURLs   []string  `gorm:"serializer:json;type:text" json:"imageUrls"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	IsActive    bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *Service) BeforeCreate(*gorm.DB) error {
	assignID(&s.ID)
	if s.ImageURLs == nil {
		s.ImageURLs = []string{}
	}
	return nil
}

type Package struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	Description     string    `gorm:"type:text;not null" json:"description"`
	OriginalPrice   int       `gorm:"not null" json:"originalPrice"`
	DiscountedPrice int       `gorm:"not null" json:"discountedPrice"`
	Features        []string  `gorm:"serializer:json;type:text;not null" json:"features"`
	IsPopular       bool      `gorm:"not null" json:"isPopular"`
	IsActive        bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (p *Package) BeforeCreate(*gorm.DB) error {
	assignID(&p.ID)
	if p.Features == nil {
		p.Features = []string{}
	}
	return nil
}

// Staff is a public team member profile. EmployeeID is the key printed on
// verification QR codes.
type Staff struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string    `gorm:"size:50;uniqueIndex;not null" json:"employeeId"`
	Name       string    `gorm:"size:150;not null" json:"name"`
	Role       string    `gorm:"size:100;not null" json:"role"`
	Bio        string    `gorm:"type:text;not null" json:"bio"`
	ImageURL   string    `gorm:"not null" json:"imageUrl"`
	Expertise  []string  `gorm:"serializer:json;type:text;not null" json:"expertise"`
	IsActive   bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Staff) BeforeCreate(*gorm.DB) error {
	assignID(&s.ID)
	if s.Expertise == nil {
		s.Expertise = []string{}
	}
	return nil
}

type Gallery struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	BeforeImageURL string    `gorm:"type:text" json:"beforeImageUrl"`
	AfterImageURL  string    `gorm:"type:text" json:"afterImageUrl"`
	VideoURL       string    `gorm:"type:text" json:"videoUrl"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	IsActive       bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Gallery) TableName() string { return "gallery" }

func (g *Gallery) BeforeCreate(*gorm.DB) error {
	assignID(&g.ID)
	return nil
}

// HasMedia reports whether at least one of the media fields is set.
func (g *Gallery) HasMedia() bool {
	return g.BeforeImageURL != "" || g.AfterImageURL != "" || g.VideoURL != ""
}

type Testimonial struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	CustomerName string    `gorm:"size:150;not null" json:"customerName"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:text;not null" json:"comment"`
	ServiceType  string    `gorm:"size:100;not null" json:"serviceType"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (t *Testimonial) BeforeCreate(*gorm.DB) error {
	assignID(&t.ID)
	return nil
}
