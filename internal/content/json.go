package content

import (
	"encoding/json"
	"fmt"
)

// UnmarshalJSON defers the metadata field until the source discriminant is
// known, then decodes it into the matching variant.
func (i *ContentItem) UnmarshalJSON(data []byte) error {
	type alias ContentItem
	shadow := struct {
		*alias
		Metadata json.RawMessage `json:"metadata,omitempty"`
	}{alias: (*alias)(i)}

	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	i.Metadata = nil

	if len(shadow.Metadata) == 0 || string(shadow.Metadata) == "null" {
		return nil
	}

	decode := func(v Metadata) error {
		return json.Unmarshal(shadow.Metadata, v)
	}

	switch i.Source {
	case SourceForum:
		var meta ForumMetadata
		if err := decode(&meta); err != nil {
			return fmt.Errorf("decode forum metadata: %w", err)
		}
		i.Metadata = meta
	case SourceYouTube, SourceYouTubeSearch:
		var meta VideoMetadata
		if err := decode(&meta); err != nil {
			return fmt.Errorf("decode video metadata: %w", err)
		}
		i.Metadata = meta
	case SourceBlueSky:
		var meta BlueSkyMetadata
		if err := decode(&meta); err != nil {
			return fmt.Errorf("decode bluesky metadata: %w", err)
		}
		i.Metadata = meta
	case SourceRSS:
		var meta RSSMetadata
		if err := decode(&meta); err != nil {
			return fmt.Errorf("decode rss metadata: %w", err)
		}
		i.Metadata = meta
	case SourceGartner:
		var meta ReviewMetadata
		if err := decode(&meta); err != nil {
			return fmt.Errorf("decode review metadata: %w", err)
		}
		i.Metadata = meta
	default:
		return fmt.Errorf("cannot decode metadata for source %q", i.Source)
	}
	return nil
}
