package recognition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItems_PlainArray(t *testing.T) {
	content := `[
		{"name": "Борщ", "quantity": 1, "price": 85.50},
		{"name": "Хліб", "quantity": 2, "price": 12}
	]`

	items, err := parseItems(content)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Борщ", items[0].Name)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.InDelta(t, 85.50, items[0].Price, 0.001)
	assert.Equal(t, 2.0, items[1].Quantity)
}

func TestParseItems_MarkdownFenced(t *testing.T) {
	content := "```json\n[{\"name\": \"Кава\", \"quantity\": 1, \"price\": 45}]\n```"

	items, err := parseItems(content)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Кава", items[0].Name)
}

func TestParseItems_FenceWithoutLanguageTag(t *testing.T) {
	content := "```\n[{\"name\": \"Чай\", \"quantity\": 1, \"price\": 30}]\n```"

	items, err := parseItems(content)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestParseItems_MissingQuantityDefaultsToOne(t *testing.T) {
	content := `[{"name": "Піца", "price": 120}]`

	items, err := parseItems(content)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 1.0, items[0].Quantity)
}

func TestParseItems_CoercesNegativeNumbers(t *testing.T) {
	content := `[{"name": "Знижка", "quantity": -1, "price": -20}]`

	items, err := parseItems(content)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].Quantity)
	assert.Equal(t, 0.0, items[0].Price)
}

func TestParseItems_SkipsNamelessEntries(t *testing.T) {
	content := `[{"name": "  ", "quantity": 1, "price": 5}, {"name": "Сік", "quantity": 1, "price": 25}]`

	items, err := parseItems(content)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Сік", items[0].Name)
}

func TestParseItems_RejectsNonArray(t *testing.T) {
	_, err := parseItems(`{"items": []}`)
	assert.Error(t, err)

	_, err = parseItems("не JSON взагалі")
	assert.Error(t, err)
}

func TestParseItems_EmptyArray(t *testing.T) {
	items, err := parseItems("[]")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecognizeReceipt_EmptyImage(t *testing.T) {
	c := NewClient("test-key", "")

	_, err := c.RecognizeReceipt(context.Background(), nil)

	assert.Error(t, err)
}
