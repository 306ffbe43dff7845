package feecomponent

type CreateFeeComponentRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Type        string  `json:"type" binding:"required,oneof=tuition admission transport exam library lab hostel other"`
	Description *string `json:"description"`
	BaseAmount  int64   `json:"base_amount" binding:"gte=0"`
}

type UpdateFeeComponentRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Type        string  `json:"type" binding:"required,oneof=tuition admission transport exam library lab hostel other"`
	Description *string `json:"description"`
	BaseAmount  int64   `json:"base_amount" binding:"gte=0"`
}

type ListFeeComponentsRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

type FeeComponentResponse struct {
	ID          string  `json:"id"`
	OrgID       string  `json:"org_id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description *string `json:"description,omitempty"`
	BaseAmount  int64   `json:"base_amount"`
	IsActive    bool    `json:"is_active"`
}
