package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleReports() []Report {
	return []Report{
		{
			ID:           primitive.NewObjectID(),
			Title:        "Chien perdu",
			Description:  "Berger allemand perdu près du marché capitale",
			Category:     CategoryAnimal,
			SubCategory:  "Chien",
			LocationName: "Nouakchott",
			Status:       StatusLost,
		},
		{
			ID:           primitive.NewObjectID(),
			Title:        "Téléphone Perdu",
			Description:  "Samsung noir, écran fissuré",
			Category:     CategoryObject,
			SubCategory:  "Téléphone",
			LocationName: "Nouadhibou",
			Status:       StatusLost,
		},
		{
			ID:           primitive.NewObjectID(),
			Title:        "Portefeuille trouvé",
			Description:  "Trouvé avenue Gamal Abdel Nasser",
			Category:     CategoryObject,
			SubCategory:  "Portefeuille",
			LocationName: "Nouakchott",
			Status:       StatusFound,
		},
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	for _, r := range sampleReports() {
		require.True(t, (Filter{}).Matches(r))
	}
	require.True(t, (Filter{}).IsZero())
}

func TestStatusFilter(t *testing.T) {
	f := Filter{Status: StatusLost}
	for _, r := range sampleReports() {
		require.Equal(t, r.Status == StatusLost, f.Matches(r))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	reports := sampleReports()

	matched := (Filter{Search: "téléphone"}).Apply(reports)
	require.Len(t, matched, 1)
	require.Equal(t, "Téléphone Perdu", matched[0].Title)

	// Search also covers the description
	matched = (Filter{Search: "GAMAL"}).Apply(reports)
	require.Len(t, matched, 1)
	require.Equal(t, "Portefeuille trouvé", matched[0].Title)
}

func TestConjunctionOfCriteria(t *testing.T) {
	reports := sampleReports()

	matched := (Filter{Category: CategoryObject, Location: "Nouakchott"}).Apply(reports)
	require.Len(t, matched, 1)
	require.Equal(t, StatusFound, matched[0].Status)

	matched = (Filter{Category: CategoryObject, Status: StatusLost, Location: "Nouakchott"}).Apply(reports)
	require.Empty(t, matched)
}

func TestApplyPreservesOrder(t *testing.T) {
	reports := sampleReports()
	matched := (Filter{Status: StatusLost}).Apply(reports)
	require.Len(t, matched, 2)
	require.Equal(t, "Chien perdu", matched[0].Title)
	require.Equal(t, "Téléphone Perdu", matched[1].Title)
}

func TestQueryContainsOnlyEqualityCriteria(t *testing.T) {
	f := Filter{Search: "chien", Category: CategoryAnimal, Status: StatusLost, Location: "Nouakchott"}
	q := f.Query()

	require.Equal(t, bson.M{
		"category":     CategoryAnimal,
		"status":       StatusLost,
		"locationName": "Nouakchott",
	}, q)
}

// Mirrors the create-then-list scenario: a new lost-animal report shows up
// under the lost filter and never under the found filter.
func TestCreatedReportVisibilityByStatus(t *testing.T) {
	existing := sampleReports()

	created := Report{
		ID:           primitive.NewObjectID(),
		Title:        "Chien perdu",
		Description:  "Chien berger, quartier Tevragh Zeina",
		Category:     CategoryAnimal,
		SubCategory:  "Chien",
		LocationName: "Nouakchott",
		Status:       StatusLost,
	}
	all := append([]Report{created}, existing...)

	lost := (Filter{Status: StatusLost}).Apply(all)
	found := (Filter{Status: StatusFound}).Apply(all)

	require.Contains(t, lost, created)
	require.NotContains(t, found, created)
	require.Len(t, lost, 3)
}
