package analysis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// errNoJSONArray reports a response with no array delimiters at all.
var errNoJSONArray = errors.New("no JSON array found in response")

// extractJSONArray locates the substring from the first '[' to the last ']'
// in text. The generation backend is not guaranteed to emit pure JSON, so
// surrounding prose is expected and ignored.
func extractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// decodeObjectArray parses the JSON array embedded in a model response into a
// slice of element maps. Elements that are not JSON objects are dropped
// rather than treated as errors; a missing array or unparseable payload is an
// error the caller converts into "zero items".
func decodeObjectArray(response string) ([]map[string]any, error) {
	payload, ok := extractJSONArray(response)
	if !ok {
		return nil, errNoJSONArray
	}

	var raw []any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("parse JSON array: %w", err)
	}

	objects := make([]map[string]any, 0, len(raw))
	for _, element := range raw {
		if obj, ok := element.(map[string]any); ok {
			objects = append(objects, obj)
		}
	}
	return objects, nil
}

// stringField extracts a string-valued field from a decoded JSON object.
// Missing keys, nulls, and non-string values all yield the empty string.
func stringField(obj map[string]any, key string) string {
	value, ok := obj[key]
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}

// decodeDecisions converts a model response into decisions. Elements lacking
// the required "decision" key are skipped.
func decodeDecisions(response string, limit int) ([]Decision, error) {
	objects, err := decodeObjectArray(response)
	if err != nil {
		return []Decision{}, err
	}

	decisions := []Decision{}
	for _, obj := range objects {
		if _, ok := obj["decision"]; !ok {
			continue
		}
		decisions = append(decisions, Decision{
			Decision:          stringField(obj, "decision"),
			MadeBy:            stringField(obj, "made_by"),
			Context:           stringField(obj, "context"),
			RelatedDiscussion: stringField(obj, "related_discussion"),
		})
		if limit > 0 && len(decisions) >= limit {
			break
		}
	}
	return decisions, nil
}

// decodeActionItems converts a model response into action items. Elements
// lacking the required "task" key are skipped, and priorities outside
// high/medium/low are cleared.
func decodeActionItems(response string, limit int) ([]ActionItem, error) {
	objects, err := decodeObjectArray(response)
	if err != nil {
		return []ActionItem{}, err
	}

	items := []ActionItem{}
	for _, obj := range objects {
		if _, ok := obj["task"]; !ok {
			continue
		}
		items = append(items, ActionItem{
			Task:     stringField(obj, "task"),
			Owner:    stringField(obj, "owner"),
			Deadline: stringField(obj, "deadline"),
			Priority: normalizePriority(stringField(obj, "priority")),
			Context:  stringField(obj, "context"),
		})
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

func normalizePriority(priority string) string {
	switch strings.ToLower(priority) {
	case "high", "medium", "low":
		return strings.ToLower(priority)
	default:
		return ""
	}
}
