package stations

import (
	"encoding/json"
	"math"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestHaversineBasicProperties(t *testing.T) {
	a := Coordinate{Latitude: 18.0858, Longitude: -15.9785}
	b := Coordinate{Latitude: 18.0947, Longitude: -15.9736}

	// Deterministic and non-negative
	require.Equal(t, Haversine(a, b), Haversine(a, b))
	require.GreaterOrEqual(t, Haversine(a, b), 0.0)

	// Symmetric
	require.Equal(t, Haversine(a, b), Haversine(b, a))

	// Zero to itself
	require.Equal(t, 0.0, Haversine(a, a))
}

func TestHaversineNouakchottPair(t *testing.T) {
	a := Coordinate{Latitude: 18.0858, Longitude: -15.9785}
	b := Coordinate{Latitude: 18.0947, Longitude: -15.9736}

	// Recompute from the formula rather than asserting a magic constant.
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	want := math.Round(2*6371*math.Atan2(math.Sqrt(h), math.Sqrt(1-h))*10) / 10

	got := Haversine(a, b)
	require.Equal(t, want, got)

	// Sanity: the two points are about a kilometer apart.
	require.Greater(t, got, 0.0)
	require.Less(t, got, 5.0)
}

func TestSortByProximityOrdersAscending(t *testing.T) {
	user := Coordinate{Latitude: 18.0858, Longitude: -15.9785}
	list := []Station{
		{NameFr: "Far", Position: Coordinate{Latitude: 20.9318, Longitude: -17.0347}},
		{NameFr: "Near", Position: Coordinate{Latitude: 18.0947, Longitude: -15.9736}},
		{NameFr: "Mid", Position: Coordinate{Latitude: 18.1338, Longitude: -15.9219}},
	}

	sorted := SortByProximity(list, &user)

	require.Equal(t, []string{"Near", "Mid", "Far"},
		[]string{sorted[0].NameFr, sorted[1].NameFr, sorted[2].NameFr})
	for i := 1; i < len(sorted); i++ {
		require.NotNil(t, sorted[i].DistanceKm)
		require.GreaterOrEqual(t, *sorted[i].DistanceKm, *sorted[i-1].DistanceKm)
	}

	// Input order is untouched
	require.Equal(t, "Far", list[0].NameFr)
}

func TestSortByProximityStableOnTies(t *testing.T) {
	user := Coordinate{Latitude: 18.0858, Longitude: -15.9785}
	same := Coordinate{Latitude: 18.0947, Longitude: -15.9736}
	list := []Station{
		{NameFr: "B", Position: same},
		{NameFr: "A", Position: same},
	}

	sorted := SortByProximity(list, &user)

	// Equal distances keep the original order
	require.Equal(t, "B", sorted[0].NameFr)
	require.Equal(t, "A", sorted[1].NameFr)
}

func TestSortByProximityWithoutPosition(t *testing.T) {
	sorted := SortByProximity(All, nil)

	names := make([]string, len(sorted))
	for i, s := range sorted {
		require.Nil(t, s.DistanceKm)
		names[i] = s.NameFr
	}
	require.True(t, sort.StringsAreSorted(names))
	require.Len(t, sorted, len(All))
}

func TestListHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"))

	// With a position: nearest first, distances present
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stations?lat=18.0858&lng=-15.9785", nil))
	require.Equal(t, 200, w.Code)

	var body struct {
		Data []Station `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, len(All))
	require.NotNil(t, body.Data[0].DistanceKm)
	require.Equal(t, "Commissariat Nouadhibou 1", body.Data[len(body.Data)-1].NameFr)

	// Without a position: alphabetical, no distances rendered
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stations", nil))
	require.Equal(t, 200, w.Code)
	require.NotContains(t, w.Body.String(), "distanceKm")

	// Half a coordinate pair is rejected
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stations?lat=18.0858", nil))
	require.Equal(t, 422, w.Code)

	// NaN parses as a float but is not a position; it must be rejected, not
	// poison every computed distance.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stations?lat=NaN&lng=NaN", nil))
	require.Equal(t, 422, w.Code)

	// Out-of-range values are rejected the same way
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/stations?lat=91&lng=0", nil))
	require.Equal(t, 422, w.Code)
}
