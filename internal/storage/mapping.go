package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sunward-optics/frametag/internal/logger"
)

// Field defines a single Elasticsearch field mapping.
type Field struct {
	Type     string `json:"type"`
	Analyzer string `json:"analyzer,omitempty"`
	Format   string `json:"format,omitempty"`
}

// IndexSettings defines index-level settings for the review index.
type IndexSettings struct {
	NumberOfShards   int `json:"number_of_shards"`
	NumberOfReplicas int `json:"number_of_replicas"`
}

// ReviewMapping is the Elasticsearch mapping for reconciled product documents.
type ReviewMapping struct {
	Settings IndexSettings  `json:"settings"`
	Mappings ReviewMappings `json:"mappings"`
}

// ReviewMappings defines the field mappings for one review document.
type ReviewMappings struct {
	Properties ReviewProperties `json:"properties"`
}

// ReviewProperties defines the properties for each review document field.
type ReviewProperties struct {
	ProductID         Field `json:"product_id"`
	Title             Field `json:"title"`
	URL               Field `json:"url"`
	Status            Field `json:"status"`
	SuggestedTags     Field `json:"suggested_tags"`
	ExistingTags      Field `json:"existing_tags"`
	ClassifierVersion Field `json:"classifier_version"`
	IndexedAt         Field `json:"indexed_at"`
}

// NewReviewMapping creates the review index mapping with default settings.
func NewReviewMapping() *ReviewMapping {
	return &ReviewMapping{
		Settings: IndexSettings{
			NumberOfShards:   1,
			NumberOfReplicas: 0,
		},
		Mappings: ReviewMappings{
			Properties: ReviewProperties{
				ProductID: Field{Type: "keyword"},
				Title: Field{
					Type:     "text",
					Analyzer: "standard",
				},
				URL:               Field{Type: "keyword"},
				Status:            Field{Type: "keyword"},
				SuggestedTags:     Field{Type: "keyword"},
				ExistingTags:      Field{Type: "keyword"},
				ClassifierVersion: Field{Type: "keyword"},
				IndexedAt: Field{
					Type:   "date",
					Format: "strict_date_optional_time||epoch_millis",
				},
			},
		},
	}
}

// GetJSON returns the mapping as a JSON string.
func (m *ReviewMapping) GetJSON() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal review mapping: %w", err)
	}
	return string(data), nil
}

// EnsureIndex creates the review index with its mapping if it does not exist.
func (e *Exporter) EnsureIndex(ctx context.Context) error {
	res, err := e.client.Indices.Exists([]string{e.index}, e.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index %s: %w", e.index, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, err := NewReviewMapping().GetJSON()
	if err != nil {
		return err
	}
	createRes, err := e.client.Indices.Create(
		e.index,
		e.client.Indices.Create.WithContext(ctx),
		e.client.Indices.Create.WithBody(strings.NewReader(body)),
	)
	if err != nil {
		return fmt.Errorf("create index %s: %w", e.index, err)
	}
	defer func() { _ = createRes.Body.Close() }()
	if createRes.IsError() {
		return fmt.Errorf("create index %s: %s", e.index, createRes.String())
	}

	e.logger.Info("review index created", logger.String("index", e.index))
	return nil
}
