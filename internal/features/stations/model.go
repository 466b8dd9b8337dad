package stations

// Coordinate is a decimal-degree latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude" form:"lat" example:"18.0858"`
	Longitude float64 `json:"longitude" form:"lng" example:"-15.9785"`
}

// Station is a police station from the fixed in-memory list. DistanceKm is
// transient: it is only set when the caller supplied a position, and is
// recomputed on every request.
type Station struct {
	NameFr     string     `json:"nameFr" example:"Commissariat Tevragh Zeina 1"`
	NameAr     string     `json:"nameAr" example:"مفوضية تفرغ زينة 1"`
	Address    string     `json:"address" example:"Avenue Gamal Abdel Nasser, Nouakchott"`
	Phone      string     `json:"phone" example:"+22245251297"`
	Position   Coordinate `json:"position"`
	DistanceKm *float64   `json:"distanceKm,omitempty" example:"1.2"`
}
