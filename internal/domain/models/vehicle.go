package models

type Vehicle struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Tier           Tier      `json:"tier"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           int       `json:"year"`
	LicensePlate   string    `json:"license_plate"`
	Color          string    `json:"color"`
	IsCompanyOwned bool      `json:"is_company_owned"`
	IsAvailable    bool      `json:"is_available"`
	Location       *Location `json:"location,omitempty"`
}

type VehicleDraft struct {
	OwnerID        string `json:"owner_id"`
	Tier           Tier   `json:"tier"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	LicensePlate   string `json:"license_plate"`
	Color          string `json:"color"`
	IsCompanyOwned bool   `json:"is_company_owned"`
}

func (d *VehicleDraft) Validate() error {
	if d.OwnerID == "" {
		return &ValidationError{Field: "owner_id", Reason: "required"}
	}
	if d.Make == "" || d.Model == "" || d.LicensePlate == "" {
		return &ValidationError{Field: "vehicle", Reason: "make, model and license plate are required"}
	}
	if d.Year < 1900 || d.Year > 2100 {
		return &ValidationError{Field: "year", Reason: "out of range"}
	}
	if d.Tier != TierStandard && d.Tier != TierPremium {
		return &ValidationError{Field: "tier", Reason: "must be standard or premium"}
	}
	return nil
}
