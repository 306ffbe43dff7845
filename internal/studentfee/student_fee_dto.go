package studentfee

type LineItemRequest struct {
	ComponentID string `json:"component_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"gt=0"`
}

type CreateStudentFeeStructureRequest struct {
	StudentID string            `json:"student_id" binding:"required,uuid"`
	SessionID string            `json:"session_id" binding:"required,uuid"`
	LineItems []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	Remarks   *string           `json:"remarks"`
}

type LineItemResponse struct {
	ID             string  `json:"id"`
	ComponentID    string  `json:"component_id"`
	OriginalAmount int64   `json:"original_amount"`
	AdjustedAmount int64   `json:"adjusted_amount"`
	IsWaived       bool    `json:"is_waived"`
	WaiverReason   *string `json:"waiver_reason,omitempty"`
}

type StudentFeeStructureResponse struct {
	ID                  string             `json:"id"`
	StudentID           string             `json:"student_id"`
	SessionID           string             `json:"session_id"`
	Source              string             `json:"source"`
	BatchFeeStructureID *string            `json:"batch_fee_structure_id,omitempty"`
	GrossAmount         int64              `json:"gross_amount"`
	ScholarshipAmount   int64              `json:"scholarship_amount"`
	NetAmount           int64              `json:"net_amount"`
	Remarks             *string            `json:"remarks,omitempty"`
	LineItems           []LineItemResponse `json:"line_items"`
}
