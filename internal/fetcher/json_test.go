package fetcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONItems_Array(t *testing.T) {
	items, err := ReadJSONItems(context.Background(), strings.NewReader(
		`[{"id":"a","features":{"rent_cost":0.5}},{"id":"b","features":{"rent_cost":0.25}}]`))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID())
	assert.Equal(t, "b", items[1].ID())
	assert.Contains(t, items[1].Features, "rent_cost")
}

func TestReadJSONItems_EnvelopeSkipsOtherFields(t *testing.T) {
	input := `{
		"meta": {"source": "survey", "tags": [1, [2, 3], {"x": null}]},
		"category": "카페",
		"items": [{"id": "x", "features": {}}],
		"trailer": true
	}`
	items, err := ReadJSONItems(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "x", items[0].ID())
}

func TestReadJSONItems_EnvelopeWithoutItems(t *testing.T) {
	items, err := ReadJSONItems(context.Background(), strings.NewReader(`{"category": "카페"}`))
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = ReadJSONItems(context.Background(), strings.NewReader(`{"items": null}`))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReadJSONItems_ItemsNotArray(t *testing.T) {
	_, err := ReadJSONItems(context.Background(), strings.NewReader(`{"items": {"id": "a"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an array")
}

func TestReadJSONItems_BadElement(t *testing.T) {
	_, err := ReadJSONItems(context.Background(), strings.NewReader(`[{"id":"a"}, 5]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode item 1")
}

func TestReadJSONItems_Truncated(t *testing.T) {
	_, err := ReadJSONItems(context.Background(), strings.NewReader(`[{"id":"a"}`))
	assert.Error(t, err)
}

func TestReadJSONItems_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadJSONItems(ctx, strings.NewReader(`[{"id":"a"}]`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
