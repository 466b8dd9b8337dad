package cities

// City is a bilingual label pair for a Mauritanian city. The French form is
// the canonical value stored on reports; the Arabic form is display-only.
type City struct {
	NameFr string `json:"nameFr" example:"Nouakchott"`
	NameAr string `json:"nameAr" example:"نواكشوط"`
}

// All is the fixed list offered in the report form, ordered by population.
var All = []City{
	{NameFr: "Nouakchott", NameAr: "نواكشوط"},
	{NameFr: "Nouadhibou", NameAr: "نواذيبو"},
	{NameFr: "Kiffa", NameAr: "كيفة"},
	{NameFr: "Kaédi", NameAr: "كيهيدي"},
	{NameFr: "Rosso", NameAr: "روصو"},
	{NameFr: "Zouérate", NameAr: "ازويرات"},
	{NameFr: "Atar", NameAr: "أطار"},
	{NameFr: "Néma", NameAr: "النعمة"},
	{NameFr: "Sélibaby", NameAr: "سيليبابي"},
	{NameFr: "Aleg", NameAr: "ألاك"},
	{NameFr: "Boutilimit", NameAr: "بوتلميت"},
	{NameFr: "Tidjikja", NameAr: "تجكجة"},
	{NameFr: "Akjoujt", NameAr: "أكجوجت"},
	{NameFr: "Aïoun", NameAr: "العيون"},
}

// IsKnown reports whether name matches a city, in either language.
func IsKnown(name string) bool {
	for _, c := range All {
		if c.NameFr == name || c.NameAr == name {
			return true
		}
	}
	return false
}
