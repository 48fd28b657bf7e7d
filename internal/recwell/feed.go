package recwell

import (
	"encoding/json"
	"errors"
	"fmt"
)

// WeightRoomTitle is the facility entry the app tracks. Matching is exact
// and case-sensitive.
const WeightRoomTitle = "ERC Weight Room"

// Sentinel errors for the feed taxonomy. Anything else returned from a
// refresh cycle is a connectivity failure. Callers pick alert wording with
// errors.Is.
var (
	// ErrParse means the body was not valid JSON, or not a JSON object.
	ErrParse = errors.New("feed is not a JSON document")
	// ErrShape means the document had no "data" array of facility objects.
	ErrShape = errors.New("feed has unexpected shape")
	// ErrNotFound means no facility matched, or the match carried no
	// usable latest sample.
	ErrNotFound = errors.New("facility not found in feed")
)

// Feed holds the decoded facility entries from one fetch. It is transient;
// nothing outlives the refresh cycle that produced it.
type Feed struct {
	Facilities []Facility
}

// Facility is one entry of the feed's "data" array.
type Facility struct {
	Title     string
	Latest    Latest
	HasLatest bool
}

// Latest is a facility's most recent occupancy sample. Time is the server's
// display string and is passed through verbatim, never parsed.
type Latest struct {
	Count  int
	Time   string
	Reason string
	Usage  string
}

// ParseFeed decodes raw feed bytes into a Feed. The decode is deliberately
// staged so failures keep their identity: bytes that are not a JSON object
// are ErrParse, a document without a "data" array of objects is ErrShape.
// Field-level oddities inside an entry never fail the parse; missing or
// mistyped fields decode to zero values.
func ParseFeed(data []byte) (*Feed, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if root == nil {
		// "null" decodes into a nil map without complaint.
		return nil, fmt.Errorf("%w: document is null", ErrParse)
	}

	rawData, ok := root["data"]
	if !ok {
		return nil, fmt.Errorf("%w: missing data key", ErrShape)
	}
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(rawData, &entries); err != nil {
		return nil, fmt.Errorf("%w: data is not an array of entries", ErrShape)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: data is null", ErrShape)
	}

	feed := &Feed{Facilities: make([]Facility, 0, len(entries))}
	for _, entry := range entries {
		fac := Facility{Title: stringField(entry, "title")}
		if rawLatest, ok := entry["latest"]; ok {
			var latest map[string]json.RawMessage
			if err := json.Unmarshal(rawLatest, &latest); err == nil && latest != nil {
				fac.HasLatest = true
				fac.Latest = Latest{
					Count:  intField(latest, "count"),
					Time:   stringField(latest, "time"),
					Reason: stringField(latest, "reason"),
					Usage:  stringField(latest, "usage"),
				}
			}
		}
		feed.Facilities = append(feed.Facilities, fac)
	}
	return feed, nil
}

// Facility returns the first entry whose title equals the given one. The
// scan stops at the first title match: a matching entry without a latest
// sample is ErrNotFound even when a later entry would qualify.
func (f *Feed) Facility(title string) (Facility, error) {
	if f == nil {
		return Facility{}, fmt.Errorf("%w: %s", ErrNotFound, title)
	}
	for _, fac := range f.Facilities {
		if fac.Title != title {
			continue
		}
		if !fac.HasLatest {
			return Facility{}, fmt.Errorf("%w: %s has no latest sample", ErrNotFound, title)
		}
		return fac, nil
	}
	return Facility{}, fmt.Errorf("%w: %s", ErrNotFound, title)
}

func stringField(obj map[string]json.RawMessage, key string) string {
	raw, ok := obj[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func intField(obj map[string]json.RawMessage, key string) int {
	raw, ok := obj[key]
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return int(n)
}
