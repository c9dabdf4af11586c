package model

// Species is the descriptive record of a classification label.
type Species struct {
	ClassName            string   `json:"class_name"`
	ThaiName             string   `json:"thai_name"`
	LocalName            string   `json:"local_name"`
	ScientificName       string   `json:"scientific_name"`
	Properties           string   `json:"properties"`
	RecommendedMenu      string   `json:"recommended_menu"`
	BotanicalDescription string   `json:"botanical_description"`
	Images               []string `json:"images"`
}

// SpeciesCatalog resolves classification labels to their species record.
type SpeciesCatalog interface {
	Lookup(label string) (Species, bool)
	All() []Species
}
