// Package recognition extracts receipt line items from a photo.
//
// The extraction itself is delegated to an OpenAI vision model; this
// package owns the prompt, the response parsing and the coercion of
// the model's output into valid ledger values. The model output is
// untrusted: anything malformed becomes a descriptive error, never a
// partial item list.
package recognition

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	openai "github.com/sashabaranov/go-openai"
)

// Prompt mirrors the production extraction instruction: keep item
// names in the receipt's original language, skip tax and discount
// lines, answer with a JSON array.
const extractionPrompt = "Проаналізуй цей чек. Витягни всі позиції товарів, їх кількість та ціну за одиницю. " +
	"Назви товарів залишай мовою оригіналу, як вони написані в чеку (не перекладай їх). " +
	"Ігноруй податки та знижки, якщо вони вказані окремими рядками, тільки основні товари. " +
	"Поверни результат у форматі JSON: масив обʼєктів {\"name\", \"quantity\", \"price\"} без додаткового тексту."

const defaultModel = openai.GPT4o

var recognitionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "splitcheck_recognition_duration_seconds",
	Help:    "Duration of receipt recognition calls.",
	Buckets: prometheus.DefBuckets,
})

// Item is a line item extracted from a receipt. IDs are assigned by
// the caller when the item enters the ledger.
type Item struct {
	Name     string
	Quantity float64
	Price    float64
}

// Recognizer turns a receipt image into line items.
type Recognizer interface {
	RecognizeReceipt(ctx context.Context, image []byte) ([]Item, error)
}

// Client is the OpenAI-backed Recognizer.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a client for the given API key. An empty model
// falls back to the default vision model.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// RecognizeReceipt sends the image to the vision model and parses the
// returned item list. The image is expected to be JPEG-equivalent.
func (c *Client) RecognizeReceipt(ctx context.Context, image []byte) ([]Item, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image")
	}

	start := time.Now()
	defer func() { recognitionDuration.Observe(time.Since(start).Seconds()) }()

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: extractionPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("recognition request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("recognition returned no choices")
	}

	items, err := parseItems(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("recognition response: %w", err)
	}
	return items, nil
}

// rawItem is the wire shape the model is asked for. Quantity and price
// are pointers so an omitted field is distinguishable from zero.
type rawItem struct {
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// parseItems decodes the model output, tolerating a markdown code
// fence around the JSON body. Numeric values are coerced into the
// valid range: missing quantity defaults to 1, anything negative or
// non-finite becomes 0.
func parseItems(content string) ([]Item, error) {
	body := stripFences(content)

	var raw []rawItem
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("expected a JSON item array: %w", err)
	}

	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}
		qty := 1.0
		if r.Quantity != nil {
			qty = coerce(*r.Quantity)
		}
		price := 0.0
		if r.Price != nil {
			price = coerce(*r.Price)
		}
		items = append(items, Item{Name: name, Quantity: qty, Price: price})
	}
	return items, nil
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripFences(content string) string {
	body := strings.TrimSpace(content)
	if !strings.HasPrefix(body, "```") {
		return body
	}
	body = strings.TrimPrefix(body, "```json")
	body = strings.TrimPrefix(body, "```")
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

// coerce clamps invalid numeric model output to 0.
func coerce(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
