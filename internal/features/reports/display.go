package reports

import "time"

// DisplayReport is the flattened shape consumed by listing and detail views:
// the stored two-level classification becomes type/category, and the two
// possible timestamps collapse into a single dateTime string.
type DisplayReport struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type" enums:"person,object,animal"`
	Category     string `json:"category"`
	Location     string `json:"location"`
	Status       string `json:"status" enums:"lost,found"`
	DateTime     string `json:"dateTime"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

// ToDisplay maps a stored report to its display shape. Total on any
// well-formed report: a missing subCategory falls back to the category tag,
// a missing lost/found timestamp falls back to the creation time.
func ToDisplay(r Report) DisplayReport {
	category := r.SubCategory
	if category == "" {
		category = r.Category
	}

	dateTime := r.CreatedAt.Format(time.RFC3339)
	if r.DateTimeLostOrFound != nil {
		dateTime = r.DateTimeLostOrFound.Format(time.RFC3339)
	}

	return DisplayReport{
		ID:           r.ID.Hex(),
		Title:        r.Title,
		Description:  r.Description,
		Type:         r.Category,
		Category:     category,
		Location:     r.LocationName,
		Status:       r.Status,
		DateTime:     dateTime,
		ContactName:  r.ContactName,
		ContactPhone: r.ContactPhone,
		ImageURL:     r.ImageURL,
	}
}

// ToDisplayList maps a slice, preserving order. Always returns a non-nil
// slice so listings serialize as [] rather than null.
func ToDisplayList(list []Report) []DisplayReport {
	out := make([]DisplayReport, 0, len(list))
	for _, r := range list {
		out = append(out, ToDisplay(r))
	}
	return out
}
