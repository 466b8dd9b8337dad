package stations

import (
	"math"
	"sort"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two coordinates in
// kilometers, rounded to one decimal place.
func Haversine(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	d := 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(d*10) / 10
}

// SortByProximity orders a copy of the station list relative to the user
// position. With a position, every station gets a distance and the list is
// sorted ascending by it; ties keep the original list order. Without one,
// the list is ordered alphabetically by French name and DistanceKm stays
// nil, since no distance is defined.
func SortByProximity(list []Station, user *Coordinate) []Station {
	out := make([]Station, len(list))
	copy(out, list)

	if user == nil {
		for i := range out {
			out[i].DistanceKm = nil
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].NameFr < out[j].NameFr
		})
		return out
	}

	for i := range out {
		d := Haversine(out[i].Position, *user)
		out[i].DistanceKm = &d
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return out
}
