package models

import "time"

type SlideFeature struct {
	Icon string `json:"icon" bson:"icon"`
	Text string `json:"text" bson:"text"`
}

type HeroSlide struct {
	SlideID             string         `json:"slideId" bson:"slideid"`
	Title               string         `json:"title" bson:"title"`
	Subtitle            string         `json:"subtitle" bson:"subtitle"`
	Description         string         `json:"description" bson:"description"`
	Image               string         `json:"image" bson:"image"`
	ButtonText          string         `json:"buttonText" bson:"buttonText"`
	ButtonLink          string         `json:"buttonLink" bson:"buttonLink"`
	SecondaryButtonText string         `json:"secondaryButtonText" bson:"secondaryButtonText"`
	SecondaryButtonLink string         `json:"secondaryButtonLink" bson:"secondaryButtonLink"`
	Badge               string         `json:"badge" bson:"badge"`
	Features            []SlideFeature `json:"features" bson:"features"`
	IsActive            bool           `json:"isActive" bson:"isActive"`
	Order               int            `json:"order" bson:"order"`
	CreatedAt           time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt" bson:"updatedAt"`
}
