package service

import (
	"encoding/json"
	"html"
	"log"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"github.com/robokitlab/catalog-api/internal/model"
)

// SearchService keeps the Meilisearch indexes in step with catalog
// writes and answers public search queries. A nil service is a valid
// no-op, so the repositories stay usable when search is not configured.
type SearchService interface {
	IndexProduct(product *model.Product) error
	DeleteProduct(id string) error
	IndexGuide(guide *model.Guide) error
	DeleteGuide(id string) error
	IndexLesson(lesson *model.Lesson) error
	DeleteLesson(id string) error
	Search(query string) (*SearchResults, error)
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	for _, index := range []string{"products", "guides", "lessons"} {
		filterable := []any{"published"}
		if _, err := s.client.Index(index).UpdateFilterableAttributes(&filterable); err != nil {
			log.Printf("Failed to update %s filterable attributes: %v", index, err)
		}

		sortable := []string{"updated_at"}
		if _, err := s.client.Index(index).UpdateSortableAttributes(&sortable); err != nil {
			log.Printf("Failed to update %s sortable attributes: %v", index, err)
		}
	}

	log.Println("Meilisearch indexes initialized")
}

// Markdown and embedded markup would pollute the index, so long-form
// fields are stripped down to plain text before indexing.
func (s *searchService) cleanContentForIndex(content string) string {
	// Replace block tags with spaces to prevent text merging
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	sanitized := s.sanitizer.Sanitize(content)

	cleanText := html.UnescapeString(sanitized)

	// Normalize whitespace
	cleanText = strings.Join(strings.Fields(cleanText), " ")

	return cleanText
}

// Structs for Meilisearch indexing
type meiliProductDoc struct {
	ID               string `json:"id"`
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Published        bool   `json:"published"`
	UpdatedAt        int64  `json:"updated_at"`
}

type meiliResourceDoc struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
	UpdatedAt int64  `json:"updated_at"`
}

func (s *searchService) IndexProduct(product *model.Product) error {
	doc := meiliProductDoc{
		ID:               product.ID.String(),
		Slug:             product.Slug,
		Name:             product.Name,
		ShortDescription: product.ShortDescription,
		LongDescription:  s.cleanContentForIndex(stringOrEmpty(product.LongDescription)),
		Published:        product.Published,
		UpdatedAt:        product.UpdatedAt.Unix(),
	}
	_, err := s.client.Index("products").AddDocuments([]meiliProductDoc{doc}, strPtr("id"))
	return err
}

func (s *searchService) DeleteProduct(id string) error {
	_, err := s.client.Index("products").DeleteDocument(id)
	return err
}

func (s *searchService) IndexGuide(guide *model.Guide) error {
	doc := meiliResourceDoc{
		ID:        guide.ID.String(),
		Slug:      guide.Slug,
		Title:     guide.Title,
		Summary:   stringOrEmpty(guide.Summary),
		Content:   s.cleanContentForIndex(stringOrEmpty(guide.Content)),
		Published: guide.Published,
		UpdatedAt: guide.UpdatedAt.Unix(),
	}
	_, err := s.client.Index("guides").AddDocuments([]meiliResourceDoc{doc}, strPtr("id"))
	return err
}

func (s *searchService) DeleteGuide(id string) error {
	_, err := s.client.Index("guides").DeleteDocument(id)
	return err
}

func (s *searchService) IndexLesson(lesson *model.Lesson) error {
	doc := meiliResourceDoc{
		ID:        lesson.ID.String(),
		Slug:      lesson.Slug,
		Title:     lesson.Title,
		Summary:   stringOrEmpty(lesson.Summary),
		Content:   s.cleanContentForIndex(stringOrEmpty(lesson.Content)),
		Published: lesson.Published,
		UpdatedAt: lesson.UpdatedAt.Unix(),
	}
	_, err := s.client.Index("lessons").AddDocuments([]meiliResourceDoc{doc}, strPtr("id"))
	return err
}

func (s *searchService) DeleteLesson(id string) error {
	_, err := s.client.Index("lessons").DeleteDocument(id)
	return err
}

// SearchResults groups hits from all three indexes for one query.
type SearchResults struct {
	Products []meiliProductDoc  `json:"products"`
	Guides   []meiliResourceDoc `json:"guides"`
	Lessons  []meiliResourceDoc `json:"lessons"`
}

// Search runs the query against every index, restricted to published
// documents so drafts never leak through the public endpoint.
func (s *searchService) Search(query string) (*SearchResults, error) {
	results := &SearchResults{
		Products: []meiliProductDoc{},
		Guides:   []meiliResourceDoc{},
		Lessons:  []meiliResourceDoc{},
	}

	req := &meilisearch.SearchRequest{
		Filter: "published = true",
		Limit:  20,
	}

	productResp, err := s.client.Index("products").Search(query, req)
	if err != nil {
		return nil, err
	}
	if err := decodeHits(productResp.Hits, &results.Products); err != nil {
		return nil, err
	}

	guideResp, err := s.client.Index("guides").Search(query, req)
	if err != nil {
		return nil, err
	}
	if err := decodeHits(guideResp.Hits, &results.Guides); err != nil {
		return nil, err
	}

	lessonResp, err := s.client.Index("lessons").Search(query, req)
	if err != nil {
		return nil, err
	}
	if err := decodeHits(lessonResp.Hits, &results.Lessons); err != nil {
		return nil, err
	}

	return results, nil
}

func decodeHits(hits interface{}, out interface{}) error {
	raw, err := json.Marshal(hits)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
