package reports

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter is a conjunction of optional criteria. Equality criteria are pushed
// into the store query; Search is always applied in memory because the store
// is not assumed to support full-text search.
type Filter struct {
	Search   string `form:"q"`
	Category string `form:"category" enums:"person,object,animal"`
	Status   string `form:"status" enums:"lost,found"`
	Location string `form:"location"`
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Status == "" && f.Location == ""
}

// Query builds the store-side part of the filter (equality criteria only).
func (f Filter) Query() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.Location != "" {
		query["locationName"] = f.Location
	}
	return query
}

// Matches reports whether the report satisfies every present criterion.
// Absent criteria are vacuously true. The search term is a case-insensitive
// substring match over title or description.
func (f Filter) Matches(r Report) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Location != "" && r.LocationName != f.Location {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Title), term) &&
			!strings.Contains(strings.ToLower(r.Description), term) {
			return false
		}
	}
	return true
}

// Apply filters a list in memory, preserving order. Used for the search-term
// post-filter and as the fallback over the last good snapshot when a store
// query fails.
func (f Filter) Apply(list []Report) []Report {
	out := make([]Report, 0, len(list))
	for _, r := range list {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
