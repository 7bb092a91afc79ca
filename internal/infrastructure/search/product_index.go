package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/domain/entity"
)

// ProductIndex mirrors the catalog into Elasticsearch for full-text search.
// All methods are safe no-ops when the client is nil, so the API keeps
// working without a search cluster.
type ProductIndex struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewProductIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *ProductIndex {
	return &ProductIndex{ES: es, Index: index, Logger: logger}
}

func (p *ProductIndex) enabled() bool {
	return p != nil && p.ES != nil && p.Index != ""
}

// IndexProduct writes or overwrites one product document.
func (p *ProductIndex) IndexProduct(ctx context.Context, prod *entity.Product) error {
	if !p.enabled() {
		return nil
	}
	doc := map[string]any{
		"id":          prod.ID,
		"name":        prod.Name,
		"description": prod.Description,
		"price_cents": prod.PriceCents,
		"category":    prod.Category,
		"image_url":   prod.ImageURL,
		"updated_at":  prod.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: p.Index, DocumentID: prod.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, p.ES)
	if err != nil {
		if p.Logger != nil {
			p.Logger.WithError(err).WithField("product_id", prod.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && p.Logger != nil {
		p.Logger.WithField("status", res.Status()).WithField("product_id", prod.ID).Warn("es index response error")
	}
	return nil
}

// DeleteProduct removes a product document, ignoring missing ones.
func (p *ProductIndex) DeleteProduct(ctx context.Context, id string) error {
	if !p.enabled() {
		return nil
	}
	req := esapi.DeleteRequest{Index: p.Index, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, p.ES)
	if err != nil {
		return err
	}
	_ = res.Body.Close()
	return nil
}

// Search runs a multi_match query over name and description.
func (p *ProductIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !p.enabled() {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := p.ES.Search(
		p.ES.Search.WithContext(c),
		p.ES.Search.WithIndex(p.Index),
		p.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
