package notion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

const (
	baseURL       = "https://api.notion.com/v1"
	notionVersion = "2022-06-28"
)

// ItfNotion is the one-way journal export surface. Sync is best effort: a
// failure never blocks the local save, the caller only records the status.
type ItfNotion interface {
	CreatePage(ctx context.Context, entry PageEntry) (string, error)
	UpdatePage(ctx context.Context, pageID string, entry PageEntry) error
}

type PageEntry struct {
	Title     string
	Content   string
	Mood      string
	Tags      []string
	CreatedAt time.Time
}

type notionClient struct {
	apiKey     string
	databaseID string
	httpClient *http.Client
	log        *logrus.Logger
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func New(log *logrus.Logger) ItfNotion {
	return &notionClient{
		apiKey:     os.Getenv("NOTION_API_KEY"),
		databaseID: os.Getenv("NOTION_DATABASE_ID"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        log,
	}
}

// BuildPageProperties maps a journal entry onto the Notion database schema:
// Name (title), Tags (multi-select), Mood (rich text), Date (created_at).
func BuildPageProperties(entry PageEntry, includeDate bool) map[string]interface{} {
	tags := make([]map[string]string, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		tags = append(tags, map[string]string{"name": tag})
	}

	properties := map[string]interface{}{
		"Name": map[string]interface{}{
			"title": []map[string]interface{}{
				{"text": map[string]string{"content": entry.Title}},
			},
		},
		"Tags": map[string]interface{}{
			"multi_select": tags,
		},
		"Mood": map[string]interface{}{
			"rich_text": []map[string]interface{}{
				{"text": map[string]string{"content": entry.Mood}},
			},
		},
	}

	if includeDate {
		properties["Date"] = map[string]interface{}{
			"date": map[string]string{"start": entry.CreatedAt.UTC().Format(time.RFC3339)},
		}
	}

	return properties
}

// BuildContentBlocks renders the entry body as a single paragraph block.
func BuildContentBlocks(content string) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"object": "block",
			"type":   "paragraph",
			"paragraph": map[string]interface{}{
				"rich_text": []map[string]interface{}{
					{
						"type": "text",
						"text": map[string]string{"content": content},
					},
				},
			},
		},
	}
}

func (n *notionClient) CreatePage(ctx context.Context, entry PageEntry) (string, error) {
	if n.apiKey == "" {
		return "", fmt.Errorf("NOTION_API_KEY not set")
	}
	if n.databaseID == "" {
		return "", fmt.Errorf("NOTION_DATABASE_ID not set")
	}

	body := map[string]interface{}{
		"parent":     map[string]string{"database_id": n.databaseID},
		"properties": BuildPageProperties(entry, true),
		"children":   BuildContentBlocks(entry.Content),
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := n.do(ctx, http.MethodPost, baseURL+"/pages", body, &result); err != nil {
		return "", err
	}

	return result.ID, nil
}

// UpdatePage refreshes page properties only; replacing existing content
// blocks is not supported by a single API call.
func (n *notionClient) UpdatePage(ctx context.Context, pageID string, entry PageEntry) error {
	if n.apiKey == "" {
		return fmt.Errorf("NOTION_API_KEY not set")
	}

	body := map[string]interface{}{
		"properties": BuildPageProperties(entry, false),
	}

	return n.do(ctx, http.MethodPatch, baseURL+"/pages/"+pageID, body, nil)
}

func (n *notionClient) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Notion-Version", notionVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		n.log.WithFields(logrus.Fields{
			"method": method,
			"url":    url,
			"error":  err.Error(),
		}).Error("Notion request failed")
		return err
	}
	defer func(closer io.ReadCloser) {
		if err := closer.Close(); err != nil {
			n.log.Debugf("Failed to close Notion response body: %v", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.log.WithFields(logrus.Fields{
			"method": method,
			"url":    url,
			"status": resp.StatusCode,
			"body":   string(raw),
		}).Error("Notion request rejected")
		return fmt.Errorf("notion: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return err
		}
	}

	return nil
}
