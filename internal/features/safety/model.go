package safety

// Tip is a localized safety advice entry.
type Tip struct {
	ID   string `json:"id" example:"safety_tip_meet_public"`
	Text string `json:"text" example:"Rencontrez toujours l'autre personne dans un lieu public."`
}

// tipIDs lists the advice shown on the safety page, in display order. The
// texts live in the locale files.
var tipIDs = []string{
	"safety_tip_meet_public",
	"safety_tip_verify_identity",
	"safety_tip_no_money",
	"safety_tip_bring_someone",
	"safety_tip_police_station",
	"safety_tip_personal_info",
	"safety_tip_missing_person",
	"safety_tip_report_scam",
}
