package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"refdeck/internal/modules/catalog/domain"
	catalogout "refdeck/internal/modules/catalog/port/out"
)

var recordValidate = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// flexID accepts ids written as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number")
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("id must be a string or number")
	}
	*f = flexID(n.String())
	return nil
}

type rawDocument struct {
	Categories []json.RawMessage `json:"categories"`
	Topics     []json.RawMessage `json:"topics"`
	Subtopics  []json.RawMessage `json:"subtopics"`
	Cards      []json.RawMessage `json:"cards"`
}

type rawCategory struct {
	ID      flexID `json:"id" validate:"required"`
	Slug    string `json:"slug" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary"`
}

type rawTopic struct {
	ID         flexID   `json:"id" validate:"required"`
	Slug       string   `json:"slug" validate:"required"`
	Title      string   `json:"title" validate:"required"`
	Summary    string   `json:"summary"`
	KeyPoints  []string `json:"key_points"`
	CoreTasks  []string `json:"core_tasks"`
	Resources  []string `json:"resources"`
	CategoryID flexID   `json:"category_id"`
}

type rawSubtopic struct {
	ID      flexID `json:"id" validate:"required"`
	TopicID flexID `json:"topic_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
}

type rawCard struct {
	ID          flexID   `json:"id" validate:"required"`
	Question    string   `json:"question" validate:"required"`
	Subtitle    string   `json:"subtitle"`
	Answer      string   `json:"answer" validate:"required"`
	Explanation string   `json:"explanation"`
	Reference   string   `json:"reference"`
	Tags        []string `json:"tags"`
	TopicID     flexID   `json:"topic_id" validate:"required_without=SubtopicID"`
	SubtopicID  flexID   `json:"subtopic_id" validate:"required_without=TopicID"`
}

type JSONDocumentSource struct {
	location string
	client   *http.Client
}

// NewJSONDocumentSource reads the content document from a local path or an
// http(s) URL.
func NewJSONDocumentSource(location string, client *http.Client) catalogout.DocumentSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &JSONDocumentSource{location: location, client: client}
}

func (s *JSONDocumentSource) Location() string {
	return s.location
}

func (s *JSONDocumentSource) Fetch(ctx context.Context) (domain.Document, []domain.Rejection, error) {
	raw, err := s.read(ctx)
	if err != nil {
		return domain.Document{}, nil, err
	}
	return Decode(raw)
}

func (s *JSONDocumentSource) read(ctx context.Context) ([]byte, error) {
	if !IsRemote(s.location) {
		raw, err := os.ReadFile(s.location)
		if err != nil {
			return nil, fmt.Errorf("read content %s: %w", s.location, err)
		}
		return raw, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", s.location, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch content %s: unexpected status %s", s.location, resp.Status)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read content body: %w", err)
	}
	return raw, nil
}

// IsRemote reports whether location is fetched over http(s).
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Decode parses a content document. A document that is not a JSON object is
// an error; individual records that do not decode or validate are rejected.
func Decode(raw []byte) (domain.Document, []domain.Rejection, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Document{}, nil, fmt.Errorf("parse content document: %w", err)
	}

	out := domain.Document{}
	rejected := []domain.Rejection{}

	for _, item := range doc.Categories {
		var rec rawCategory
		if r, ok := decodeRecord(item, &rec, domain.KindCategory, func() string { return string(rec.ID) }); !ok {
			rejected = append(rejected, r)
			continue
		}
		out.Categories = append(out.Categories, domain.Category{
			ID:      string(rec.ID),
			Slug:    rec.Slug,
			Title:   rec.Title,
			Summary: rec.Summary,
		})
	}
	for _, item := range doc.Topics {
		var rec rawTopic
		if r, ok := decodeRecord(item, &rec, domain.KindTopic, func() string { return string(rec.ID) }); !ok {
			rejected = append(rejected, r)
			continue
		}
		out.Topics = append(out.Topics, domain.Topic{
			ID:         string(rec.ID),
			Slug:       rec.Slug,
			Title:      rec.Title,
			Summary:    rec.Summary,
			KeyPoints:  rec.KeyPoints,
			CoreTasks:  rec.CoreTasks,
			Resources:  rec.Resources,
			CategoryID: string(rec.CategoryID),
		})
	}
	for _, item := range doc.Subtopics {
		var rec rawSubtopic
		if r, ok := decodeRecord(item, &rec, domain.KindSubtopic, func() string { return string(rec.ID) }); !ok {
			rejected = append(rejected, r)
			continue
		}
		out.Subtopics = append(out.Subtopics, domain.Subtopic{
			ID:      string(rec.ID),
			TopicID: string(rec.TopicID),
			Title:   rec.Title,
		})
	}
	for _, item := range doc.Cards {
		var rec rawCard
		if r, ok := decodeRecord(item, &rec, domain.KindCard, func() string { return string(rec.ID) }); !ok {
			rejected = append(rejected, r)
			continue
		}
		out.Cards = append(out.Cards, domain.Card{
			ID:          string(rec.ID),
			Question:    rec.Question,
			Subtitle:    rec.Subtitle,
			Answer:      rec.Answer,
			Explanation: rec.Explanation,
			Reference:   rec.Reference,
			Tags:        rec.Tags,
			TopicID:     string(rec.TopicID),
			SubtopicID:  string(rec.SubtopicID),
		})
	}
	return out, rejected, nil
}

func decodeRecord(item json.RawMessage, target any, kind domain.RecordKind, id func() string) (domain.Rejection, bool) {
	if err := json.Unmarshal(item, target); err != nil {
		return domain.Rejection{Kind: kind, ID: id(), Reason: "malformed record: " + err.Error()}, false
	}
	if err := recordValidate.Struct(target); err != nil {
		return domain.Rejection{Kind: kind, ID: id(), Reason: describe(err)}, false
	}
	return domain.Rejection{}, true
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "required_without":
			parts = append(parts, fe.Field()+" or "+jsonName(fe.Param())+" is required")
		default:
			parts = append(parts, fe.Field()+" failed "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

func jsonName(field string) string {
	switch field {
	case "SubtopicID":
		return "subtopic_id"
	case "TopicID":
		return "topic_id"
	default:
		return strings.ToLower(field)
	}
}
