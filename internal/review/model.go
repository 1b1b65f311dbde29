package review

// Tag categories with a fixed meaning. Every other category names a dish.
const (
	CategoryServer         = "server_name"
	CategoryServiceQuality = "service_qualities"
	CategoryAtmosphere     = "atmosphere"
	CategoryReasonForVisit = "reason_for_visit"
	CategoryQuickHighlight = "quick_highlight"
)

const (
	NothingToProcessMessage = "Aucune donnée à traiter."
	PrivateOnlyMessage      = "Merci, votre retour a bien été transmis à l'équipe."
)

// QualitativeCategories lists the categories recorded in qualitative_feedback.
var QualitativeCategories = []string{
	CategoryServiceQuality,
	CategoryAtmosphere,
	CategoryReasonForVisit,
	CategoryQuickHighlight,
}

type Tag struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

type Request struct {
	Lang            string   `json:"lang"`
	Tags            []Tag    `json:"tags"`
	PrivateFeedback string   `json:"private_feedback"`
	Rating          *float64 `json:"rating,omitempty"`
	CustomNotes     string   `json:"custom_notes,omitempty"`
}

// Result carries either the drafted review or a confirmation message.
type Result struct {
	Review  string `json:"review,omitempty"`
	Message string `json:"message,omitempty"`
}
