package transcripts

import (
	"encoding/json"
	"strings"
)

// rawSegment covers the object shapes the transcript backend emits.
// Different endpoints disagree on the text key and on timing fields.
type rawSegment struct {
	Text     string   `json:"text"`
	Subtitle string   `json:"subtitle"`
	Content  string   `json:"content"`
	Start    *float64 `json:"start"`
	End      *float64 `json:"end"`
}

// parseSegments normalizes a heterogeneous transcript array. Elements may
// be bare strings or objects with text/subtitle/content and optional
// start/end seconds. Unparseable elements degrade to empty text so one
// malformed entry cannot sink the whole transcript.
func parseSegments(raw []json.RawMessage) []Segment {
	segments := make([]Segment, 0, len(raw))
	for _, item := range raw {
		segments = append(segments, parseSegment(item))
	}
	return segments
}

func parseSegment(item json.RawMessage) Segment {
	var text string
	if err := json.Unmarshal(item, &text); err == nil {
		return Segment{Text: text}
	}

	var obj rawSegment
	if err := json.Unmarshal(item, &obj); err != nil {
		return Segment{}
	}

	seg := Segment{Text: firstNonEmpty(obj.Text, obj.Subtitle, obj.Content)}
	if obj.Start != nil {
		offset := int64(*obj.Start * 1000)
		seg.Offset = &offset
		if obj.End != nil {
			duration := int64((*obj.End - *obj.Start) * 1000)
			seg.Duration = &duration
		}
	}
	return seg
}

// JoinText concatenates segment texts with single-space separators.
// Empty segments still contribute a separator; callers check the joined
// result for blankness, not the segment count.
func JoinText(segments []Segment) string {
	parts := make([]string, len(segments))
	for i, s := range segments {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
