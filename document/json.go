package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// blockEnvelope is the wire shape of a single block.
type blockEnvelope struct {
	ID        string          `json:"id"`
	Type      BlockType       `json:"type"`
	Content   string          `json:"content,omitempty"`
	Props     json.RawMessage `json:"props,omitempty"`
	IsPrivate json.RawMessage `json:"isPrivate,omitempty"`
}

// MarshalJSON encodes the block with its tagged props payload.
func (b Block) MarshalJSON() ([]byte, error) {
	props := b.Props
	if props == nil {
		props = DefaultProps(b.Type)
	}
	encodedProps, err := json.Marshal(props)
	if err != nil {
		return nil, fmt.Errorf("document: encode props for block %s: %w", b.ID, err)
	}
	return json.Marshal(struct {
		ID        string          `json:"id"`
		Type      BlockType       `json:"type"`
		Content   string          `json:"content,omitempty"`
		Props     json.RawMessage `json:"props"`
		IsPrivate bool            `json:"isPrivate"`
	}{b.ID, b.Type, b.Content, encodedProps, b.IsPrivate})
}

// UnmarshalJSON decodes one block, normalizing its props payload and coercing
// isPrivate to a real boolean regardless of how it was persisted upstream.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw blockEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("document: decode block: %w", err)
	}
	if !raw.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBlockType, raw.Type)
	}

	props, err := decodeProps(raw.Type, raw.Props)
	if err != nil {
		return err
	}

	b.ID = raw.ID
	b.Type = raw.Type
	b.Content = raw.Content
	b.Props = props
	b.IsPrivate = coerceBool(raw.IsPrivate)
	return nil
}

func decodeProps(t BlockType, raw json.RawMessage) (Props, error) {
	trimmed := trimJSONSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return DefaultProps(t), nil
	}

	switch t {
	case TypeHeading:
		var props HeadingProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode heading props: %w", err)
		}
		return props, nil
	case TypeParagraph:
		var props ParagraphProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode paragraph props: %w", err)
		}
		return props, nil
	case TypeLink:
		var props LinkProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode link props: %w", err)
		}
		return props, nil
	case TypeImage:
		var props ImageProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode image props: %w", err)
		}
		return props, nil
	case TypeList:
		var props ListProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode list props: %w", err)
		}
		return props, nil
	case TypeTable:
		var props TableProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode table props: %w", err)
		}
		props.normalize()
		return &props, nil
	case TypeFile:
		var props FileProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode file props: %w", err)
		}
		return props, nil
	case TypeVideo:
		// Controls defaults to true when the stored payload omits the flag.
		aux := struct {
			VideoSrc    string `json:"videoSrc"`
			VideoTitle  string `json:"videoTitle"`
			VideoWidth  int    `json:"videoWidth"`
			VideoHeight int    `json:"videoHeight"`
			Controls    *bool  `json:"controls"`
			Autoplay    bool   `json:"autoplay"`
			Loop        bool   `json:"loop"`
			Muted       bool   `json:"muted"`
		}{}
		if err := json.Unmarshal(trimmed, &aux); err != nil {
			return nil, fmt.Errorf("document: decode video props: %w", err)
		}
		props := VideoProps{
			VideoSrc:    aux.VideoSrc,
			VideoTitle:  aux.VideoTitle,
			VideoWidth:  aux.VideoWidth,
			VideoHeight: aux.VideoHeight,
			Controls:    true,
			Autoplay:    aux.Autoplay,
			Loop:        aux.Loop,
			Muted:       aux.Muted,
		}
		if aux.Controls != nil {
			props.Controls = *aux.Controls
		}
		return props, nil
	case TypePageLink:
		var props PageLinkProps
		if err := json.Unmarshal(trimmed, &props); err != nil {
			return nil, fmt.Errorf("document: decode page link props: %w", err)
		}
		return props, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockType, t)
	}
}

// coerceBool folds the boolean representations observed in stored records
// (true, "true", 1) into a real bool. Anything unrecognized reads as false.
func coerceBool(raw json.RawMessage) bool {
	trimmed := trimJSONSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch string(trimmed) {
	case "true":
		return true
	case "false", "null":
		return false
	}
	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1":
			return true
		}
		return false
	}
	if number, err := strconv.ParseFloat(string(trimmed), 64); err == nil {
		return number != 0
	}
	return false
}

// Encode serializes the document to its wire form: a JSON array of blocks.
// An empty or nil document encodes as "[]", never null, so owning records can
// always send a value.
func Encode(doc Document) ([]byte, error) {
	if len(doc) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Block(doc))
}

// EncodeString serializes the document to the string-encoded form some owning
// records require.
func EncodeString(doc Document) (string, error) {
	data, err := Encode(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Decode parses the wire form back into the typed model, accepting both the
// native JSON array and the string-encoded variant. Legacy bare-string cells
// are normalized during decode; no untyped values survive into memory.
func Decode(data []byte) (Document, error) {
	trimmed := trimJSONSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return Document{}, nil
	}

	// String-encoded form: a JSON string wrapping the array.
	if trimmed[0] == '"' {
		var inner string
		if err := json.Unmarshal(trimmed, &inner); err != nil {
			return nil, fmt.Errorf("document: decode string-encoded form: %w", err)
		}
		return Decode([]byte(inner))
	}

	var blocks []Block
	if err := json.Unmarshal(trimmed, &blocks); err != nil {
		return nil, fmt.Errorf("document: decode: %w", err)
	}
	return Document(blocks), nil
}

// DecodeString parses the string-encoded wire form.
func DecodeString(encoded string) (Document, error) {
	if strings.TrimSpace(encoded) == "" {
		return Document{}, nil
	}
	return Decode([]byte(encoded))
}

// DecodeLenient parses the wire form, falling back to an empty document when
// the stored payload is corrupt. The second return reports whether the input
// decoded cleanly; callers log a normalization warning when it did not, so a
// broken record never blocks the rest of a page from rendering.
func DecodeLenient(data []byte) (Document, bool) {
	doc, err := Decode(data)
	if err != nil {
		return Document{}, false
	}
	return doc, true
}
