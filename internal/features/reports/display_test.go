package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToDisplayFullReport(t *testing.T) {
	lostAt := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	r := Report{
		ID:                  primitive.NewObjectID(),
		Title:               "Chien perdu",
		Description:         "Berger allemand",
		Category:            CategoryAnimal,
		SubCategory:         "Chien",
		LocationName:        "Nouakchott",
		Status:              StatusLost,
		DateTimeLostOrFound: &lostAt,
		ContactName:         "Mohamed Vall",
		ContactPhone:        "+22236123456",
		ImageURL:            "https://res.cloudinary.com/demo/image/upload/dog.jpg",
		CreatedAt:           time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
	}

	d := ToDisplay(r)

	require.Equal(t, r.ID.Hex(), d.ID)
	require.Equal(t, "Chien perdu", d.Title)
	require.Equal(t, "Berger allemand", d.Description)
	require.Equal(t, CategoryAnimal, d.Type)
	require.Equal(t, "Chien", d.Category)
	require.Equal(t, "Nouakchott", d.Location)
	require.Equal(t, StatusLost, d.Status)
	require.Equal(t, "2024-05-01T18:30:00Z", d.DateTime)
	require.Equal(t, "Mohamed Vall", d.ContactName)
	require.Equal(t, "+22236123456", d.ContactPhone)
	require.Equal(t, r.ImageURL, d.ImageURL)
}

func TestToDisplayFallbacks(t *testing.T) {
	r := Report{
		ID:           primitive.NewObjectID(),
		Title:        "Portefeuille trouvé",
		Description:  "Trouvé au Ksar",
		Category:     CategoryObject,
		LocationName: "Nouakchott",
		Status:       StatusFound,
		ContactName:  "Aicha",
		ContactPhone: "36123456",
		CreatedAt:    time.Date(2024, 6, 2, 9, 15, 0, 0, time.UTC),
	}

	d := ToDisplay(r)

	// Missing subCategory falls back to the category tag
	require.Equal(t, CategoryObject, d.Category)
	// Missing lost/found timestamp falls back to the creation time
	require.Equal(t, "2024-06-02T09:15:00Z", d.DateTime)

	// Contact and text fields pass through untouched
	require.Equal(t, r.Title, d.Title)
	require.Equal(t, r.Description, d.Description)
	require.Equal(t, r.ContactName, d.ContactName)
	require.Equal(t, r.ContactPhone, d.ContactPhone)

	require.NotEmpty(t, d.Location)
	require.NotEmpty(t, d.DateTime)
}

func TestToDisplayListIsNeverNil(t *testing.T) {
	out := ToDisplayList(nil)
	require.NotNil(t, out)
	require.Empty(t, out)

	out = ToDisplayList(sampleReports())
	require.Len(t, out, 3)
	require.Equal(t, "Chien perdu", out[0].Title)
}
