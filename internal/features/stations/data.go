package stations

// All is the fixed station list served by the finder. Coordinates are
// approximate building positions, good enough for proximity ordering.
var All = []Station{
	{
		NameFr:   "Commissariat Tevragh Zeina 1",
		NameAr:   "مفوضية تفرغ زينة 1",
		Address:  "Avenue Gamal Abdel Nasser, Tevragh Zeina, Nouakchott",
		Phone:    "+22245251297",
		Position: Coordinate{Latitude: 18.0947, Longitude: -15.9736},
	},
	{
		NameFr:   "Commissariat Ksar 1",
		NameAr:   "مفوضية لكصر 1",
		Address:  "Avenue de l'Indépendance, Ksar, Nouakchott",
		Phone:    "+22245252943",
		Position: Coordinate{Latitude: 18.0985, Longitude: -15.9538},
	},
	{
		NameFr:   "Commissariat Sebkha 1",
		NameAr:   "مفوضية السبخة 1",
		Address:  "Route de Rosso, Sebkha, Nouakchott",
		Phone:    "+22245251731",
		Position: Coordinate{Latitude: 18.0736, Longitude: -15.9824},
	},
	{
		NameFr:   "Commissariat El Mina 1",
		NameAr:   "مفوضية الميناء 1",
		Address:  "Boulevard Media, El Mina, Nouakchott",
		Phone:    "+22245250874",
		Position: Coordinate{Latitude: 18.0561, Longitude: -15.9702},
	},
	{
		NameFr:   "Commissariat Arafat 1",
		NameAr:   "مفوضية عرفات 1",
		Address:  "Carrefour Madrid, Arafat, Nouakchott",
		Phone:    "+22245253318",
		Position: Coordinate{Latitude: 18.0489, Longitude: -15.9267},
	},
	{
		NameFr:   "Commissariat Dar Naim 1",
		NameAr:   "مفوضية دار النعيم 1",
		Address:  "Route de l'Espoir, Dar Naim, Nouakchott",
		Phone:    "+22245290461",
		Position: Coordinate{Latitude: 18.1338, Longitude: -15.9219},
	},
	{
		NameFr:   "Commissariat Toujounine 1",
		NameAr:   "مفوضية توجنين 1",
		Address:  "Route de l'Espoir, Toujounine, Nouakchott",
		Phone:    "+22245290875",
		Position: Coordinate{Latitude: 18.1027, Longitude: -15.8935},
	},
	{
		NameFr:   "Commissariat Riyadh 1",
		NameAr:   "مفوضية الرياض 1",
		Address:  "Route de Boutilimit, Riyadh, Nouakchott",
		Phone:    "+22245254102",
		Position: Coordinate{Latitude: 18.0301, Longitude: -15.9456},
	},
	{
		NameFr:   "Commissariat Teyarett 1",
		NameAr:   "مفوضية تيارت 1",
		Address:  "Route de Nouadhibou, Teyarett, Nouakchott",
		Phone:    "+22245290233",
		Position: Coordinate{Latitude: 18.1244, Longitude: -15.9511},
	},
	{
		NameFr:   "Commissariat Nouadhibou 1",
		NameAr:   "مفوضية نواذيبو 1",
		Address:  "Boulevard Médian, Nouadhibou",
		Phone:    "+22245745036",
		Position: Coordinate{Latitude: 20.9318, Longitude: -17.0347},
	},
	{
		NameFr:   "Commissariat Rosso",
		NameAr:   "مفوضية روصو",
		Address:  "Avenue principale, Rosso",
		Phone:    "+22245569023",
		Position: Coordinate{Latitude: 16.5128, Longitude: -15.8054},
	},
}
