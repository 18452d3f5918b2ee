package domain

// GearCategory groups gear items. Its ID is immutable once items reference it.
type GearCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// GearCategoryPatch is a partial update; the ID is deliberately absent.
type GearCategoryPatch struct {
	Name *string
	Icon *string
}

// GearItem is one entry on the packing list. Weight is in kilograms.
type GearItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	IsPacked bool    `json:"isPacked"`
	Notes    string  `json:"notes,omitempty"`
	ImageURI string  `json:"imageUri,omitempty"`
}

// GearItemInput carries the caller-supplied fields of a new item.
type GearItemInput struct {
	Name     string
	Category string
	Weight   float64
	IsPacked bool
	Notes    string
	ImageURI string
}

// GearItemPatch is a partial update; nil fields are left unchanged.
type GearItemPatch struct {
	Name     *string
	Category *string
	Weight   *float64
	IsPacked *bool
	Notes    *string
	ImageURI *string
}

// PackingProgress summarises how much of the packing list is packed.
type PackingProgress struct {
	Packed     int `json:"packed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
