package domain

// AssetType classifies a digital asset.
type AssetType string

const (
	AssetTypeActionCamera AssetType = "Action Camera"
	AssetTypeSatellite    AssetType = "Satellite"
	AssetTypeDrone        AssetType = "Drone"
	AssetTypeOther        AssetType = "Other"
)

// Valid reports whether t is one of the known asset types.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeActionCamera, AssetTypeSatellite, AssetTypeDrone, AssetTypeOther:
		return true
	}
	return false
}

// DigitalAsset is a piece of electronics carried on the road.
type DigitalAsset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         AssetType `json:"type"`
	SerialNumber string    `json:"serialNumber"`
	Notes        string    `json:"notes"`
	ImageURI     string    `json:"imageUri,omitempty"`
}

// DigitalAssetInput carries the caller-supplied fields of a new asset.
type DigitalAssetInput struct {
	Name         string
	Type         AssetType
	SerialNumber string
	Notes        string
	ImageURI     string
}

// DigitalAssetPatch is a partial update; nil fields are left unchanged.
type DigitalAssetPatch struct {
	Name         *string
	Type         *AssetType
	SerialNumber *string
	Notes        *string
	ImageURI     *string
}

// GalleryPhoto is a free-standing showcase photo, unrelated to any trip.
type GalleryPhoto struct {
	ID          string `json:"id"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
	ImageURI    string `json:"imageUri"`
}

// Profile describes the traveller. There is exactly one per installation.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// ProfilePatch is a partial update; nil fields are left unchanged.
type ProfilePatch struct {
	Name  *string
	Email *string
	Bio   *string
}
