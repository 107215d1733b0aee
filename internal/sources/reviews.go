package sources

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spryker-community/echo/internal/content"
)

//go:embed reviews.json
var reviewsDataset []byte

type reviewRecord struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Summary          string  `json:"summary"`
	URL              string  `json:"url"`
	Date             string  `json:"date"`
	Rating           float64 `json:"rating"`
	ReviewerRole     string  `json:"reviewerRole"`
	ReviewerIndustry string  `json:"reviewerIndustry"`
	ReviewerSize     string  `json:"reviewerSize"`
}

// ReviewAdapter serves the bundled analyst-review dataset. The dataset is
// static; Fetch never touches the network.
type ReviewAdapter struct {
	records []reviewRecord
}

func NewReviewAdapter() (*ReviewAdapter, error) {
	var records []reviewRecord
	if err := json.Unmarshal(reviewsDataset, &records); err != nil {
		return nil, fmt.Errorf("parse review dataset: %w", err)
	}
	return &ReviewAdapter{records: records}, nil
}

func (a *ReviewAdapter) Source() content.Source {
	return content.SourceGartner
}

func (a *ReviewAdapter) Fetch(_ context.Context) ([]content.ContentItem, error) {
	items := make([]content.ContentItem, 0, len(a.records))
	for _, r := range a.records {
		date, _ := time.Parse("2006-01-02", r.Date)
		items = append(items, content.ContentItem{
			ID:          "gartner-" + r.ID,
			Title:       r.Title,
			Description: r.Summary,
			URL:         r.URL,
			Date:        date,
			Source:      content.SourceGartner,
			Type:        "review",
			Metadata: content.ReviewMetadata{
				Rating:           r.Rating,
				ReviewerRole:     r.ReviewerRole,
				ReviewerIndustry: r.ReviewerIndustry,
				ReviewerSize:     r.ReviewerSize,
			},
		})
	}
	return items, nil
}
