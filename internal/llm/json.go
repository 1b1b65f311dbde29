package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidJSON = errors.New("llm: completion is not a JSON object")

// CompleteJSON runs req in JSON mode and returns the first JSON object found
// in the completion. Code fences and surrounding prose are stripped.
func CompleteJSON(ctx context.Context, client Client, req Request) (string, error) {
	req.JSON = true

	raw, err := client.Complete(ctx, req)
	if err != nil {
		return "", err
	}

	obj := extractJSON(raw)
	if obj == "" || !gjson.Valid(obj) || !gjson.Parse(obj).IsObject() {
		return "", ErrInvalidJSON
	}
	return obj, nil
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
