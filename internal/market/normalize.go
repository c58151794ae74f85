package market

import (
	"encoding/json"
	"net/http"

	"github.com/OzgurKaptann/mini-market-dashboard/internal/transport"
	"github.com/OzgurKaptann/mini-market-dashboard/pkg/models"
)

// The markets endpoint has been observed to answer with three envelope
// shapes depending on which upstream served it: a bare array, an object
// with the array under "data", or an object with it under "results".
// Matchers run in that precedence order; first match wins.
var shapeMatchers = []func(raw json.RawMessage) (json.RawMessage, bool){
	matchBareList,
	envelopeMatcher("data"),
	envelopeMatcher("results"),
}

// NormalizeAssets extracts the asset list from whichever accepted envelope
// the response used. Any other shape is a hard failure: the client cannot
// know which upstream produced it.
func NormalizeAssets(raw json.RawMessage) ([]models.Asset, error) {
	for _, match := range shapeMatchers {
		list, ok := match(raw)
		if !ok {
			continue
		}

		var assets []models.Asset
		if err := json.Unmarshal(list, &assets); err != nil {
			break
		}
		return assets, nil
	}

	return nil, &transport.APIError{
		Status: http.StatusInternalServerError,
		Detail: "unexpected API response shape",
	}
}

func matchBareList(raw json.RawMessage) (json.RawMessage, bool) {
	if !isJSONArray(raw) {
		return nil, false
	}
	return raw, true
}

func envelopeMatcher(field string) func(raw json.RawMessage) (json.RawMessage, bool) {
	return func(raw json.RawMessage) (json.RawMessage, bool) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, false
		}
		list, ok := envelope[field]
		if !ok || !isJSONArray(list) {
			return nil, false
		}
		return list, true
	}
}

// isJSONArray reports whether raw starts a JSON array. A JSON null is not
// an array, so a null body falls through to the shape failure.
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
