package boutiqueserver

// Boutique - a retail location as exposed on the wire
type Boutique struct {
	Id int64 `json:"id"`

	Nom string `json:"nom"`

	Adresse string `json:"adresse"`

	Ville string `json:"ville"`

	CodePostal int32 `json:"codePostal"`

	// Avis is null until the store has been rated
	Avis *int32 `json:"avis"`
}

// ApiResponse - uniform status/message envelope
type ApiResponse struct {
	Status int `json:"status"`

	Message string `json:"message"`
}

// CreateBoutiqueRequest - optional creation payload; absent fields keep their placeholder values
type CreateBoutiqueRequest struct {
	Nom *string `json:"nom,omitempty"`

	Adresse *string `json:"adresse,omitempty"`

	Ville *string `json:"ville,omitempty"`

	CodePostal *int32 `json:"codePostal,omitempty"`
}

// UpdateBoutiqueRequest - optional update payload
type UpdateBoutiqueRequest struct {
	Avis *int32 `json:"avis,omitempty"`
}
