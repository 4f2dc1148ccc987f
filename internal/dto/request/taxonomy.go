package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type CompanyRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=250"`
	IsDev    bool    `json:"is_dev"`
	IsPub    bool    `json:"is_pub"`
	OpenedAt *string `json:"opened_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ClosedAt *string `json:"closed_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type PlatformRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=250"`
	ManufacturerIDs []string `json:"manufacturer_ids,omitempty" validate:"omitempty,dive,uuid"`
}
