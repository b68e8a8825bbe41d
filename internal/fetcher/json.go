package fetcher

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sodam-labs/sodam/internal/model"
)

// itemsKey is the envelope field holding the item array, as in a batch request.
const itemsKey = "items"

// ReadJSONItems decodes either a bare array of items or an object carrying
// them under "items". Items are decoded one at a time; other envelope
// fields are skipped without being buffered into memory as values.
func ReadJSONItems(ctx context.Context, r io.Reader) ([]model.Item, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "fetcher: read json")
	}

	switch tok {
	case json.Delim('['):
		return decodeItemArray(ctx, dec)
	case json.Delim('{'):
		return decodeItemEnvelope(ctx, dec)
	default:
		return nil, eris.Errorf("fetcher: expected an item array or object, got %v", tok)
	}
}

// decodeItemEnvelope walks the keys of an object until it reaches "items".
// An object without "items" yields no items.
func decodeItemEnvelope(ctx context.Context, dec *json.Decoder) ([]model.Item, error) {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: read envelope key")
		}
		key, _ := keyTok.(string)
		if key != itemsKey {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		open, err := dec.Token()
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: read items")
		}
		if open == nil {
			return nil, nil
		}
		if open != json.Delim('[') {
			return nil, eris.Errorf("fetcher: %q must be an array, got %v", itemsKey, open)
		}
		return decodeItemArray(ctx, dec)
	}
	return nil, nil
}

// decodeItemArray decodes elements up to the closing bracket of an array
// whose opening bracket has already been consumed.
func decodeItemArray(ctx context.Context, dec *json.Decoder) ([]model.Item, error) {
	var items []model.Item
	for dec.More() {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "fetcher: read items")
		}
		var it model.Item
		if err := dec.Decode(&it); err != nil {
			return nil, eris.Wrapf(err, "fetcher: decode item %d", len(items))
		}
		items = append(items, it)
	}
	if _, err := dec.Token(); err != nil {
		return nil, eris.Wrap(err, "fetcher: read closing bracket")
	}
	return items, nil
}

// skipValue consumes one value of any shape token by token.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return eris.Wrap(err, "fetcher: skip envelope field")
		}
		switch tok {
		case json.Delim('['), json.Delim('{'):
			depth++
		case json.Delim(']'), json.Delim('}'):
			depth--
		}
		if depth == 0 {
			return nil
		}
	}
}
