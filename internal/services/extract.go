// internal/services/extract.go
package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// ParseTier records which stage of the extraction pipeline produced a
// result, so callers can tell a strict parse from a heuristic recovery.
type ParseTier string

const (
	// ParseTierStrict: the fence-stripped text was valid JSON.
	ParseTierStrict ParseTier = "strict"
	// ParseTierHeuristic: JSON parsing failed and the text was recovered
	// by splitting on commas.
	ParseTierHeuristic ParseTier = "heuristic"
	// ParseTierFallback: the whole text became a single candidate, or a
	// fixed error/mock value was substituted.
	ParseTierFallback ParseTier = "fallback"
)

// The model is asked for bare JSON but sometimes wraps it in a fenced code
// block, with or without a language tag.
var fenceRegexp = regexp.MustCompile("(?s)^```(\\w*)?\\s*\\n?(.*?)\\n?\\s*```$")

// quoteBracketReplacer strips quote and bracket characters left behind when
// a JSON-ish list is recovered by splitting rather than parsing.
var quoteBracketReplacer = strings.NewReplacer(`"`, "", "[", "", "]", "")

// StripFence removes one optional leading/trailing code fence from raw text.
// The language tag, if any, is discarded. Unfenced input passes through
// trimmed.
func StripFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if match := fenceRegexp.FindStringSubmatch(trimmed); match != nil && match[2] != "" {
		return strings.TrimSpace(match[2])
	}
	return trimmed
}

// ExtractTitles recovers a list of title candidates from a model response.
// The pipeline has three tiers, all operating on the same fence-stripped
// text: a strict JSON parse, then a comma-split heuristic, then the whole
// text as a single candidate.
func ExtractTitles(raw string) ([]string, ParseTier) {
	text := StripFence(raw)

	var parsed interface{}
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		if list, ok := parsed.([]interface{}); ok {
			titles := make([]string, 0, len(list))
			for _, item := range list {
				titles = append(titles, fmt.Sprintf("%v", item))
			}
			return titles, ParseTierStrict
		}
		return []string{fmt.Sprintf("%v", parsed)}, ParseTierStrict
	}

	if strings.Contains(text, ",") {
		pieces := strings.Split(text, ",")
		titles := make([]string, 0, len(pieces))
		for _, piece := range pieces {
			titles = append(titles, quoteBracketReplacer.Replace(strings.TrimSpace(piece)))
		}
		return titles, ParseTierHeuristic
	}

	return []string{quoteBracketReplacer.Replace(text)}, ParseTierFallback
}
