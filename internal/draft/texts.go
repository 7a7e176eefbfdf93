package draft

import "encoding/json"

// TextMaterial is a resolved caption.
type TextMaterial struct {
	ID      string
	Content string
}

// ResolveTexts maps each material's declared id to its display text. A later
// material with the same id replaces an earlier one.
func ResolveTexts(table TextTable) map[string]TextMaterial {
	texts := make(map[string]TextMaterial, len(table))
	for _, raw := range table {
		texts[raw.ID] = TextMaterial{
			ID:      raw.ID,
			Content: resolveContent(raw.Content),
		}
	}
	return texts
}

// newer drafts wrap the caption as {"text": "...", "styles": [...]}
type contentEnvelope struct {
	Text *string `json:"text"`
}

func resolveContent(raw string) string {
	var env contentEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return raw
	}
	if env.Text == nil {
		return raw
	}
	return *env.Text
}
