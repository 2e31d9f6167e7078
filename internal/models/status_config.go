package models

// StatusConfig carries the display metadata the frontend renders for a status badge.
type StatusConfig struct {
	Status  ApplicationStatus `json:"status"`
	Label   string            `json:"label"`
	Variant string            `json:"variant"`
}

// StatusConfigs is served to the presentation layer so badge labels stay in one place.
var StatusConfigs = []StatusConfig{
	{Status: StatusApplied, Label: "Applied", Variant: "default"},
	{Status: StatusInterview, Label: "Interview", Variant: "default"},
	{Status: StatusOffer, Label: "Offer", Variant: "default"},
	{Status: StatusRejected, Label: "Rejected", Variant: "destructive"},
	{Status: StatusGhosted, Label: "Ghosted", Variant: "secondary"},
}
