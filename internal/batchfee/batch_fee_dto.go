package batchfee

type LineItemRequest struct {
	ComponentID string `json:"component_id" binding:"required,uuid"`
	Amount      int64  `json:"amount" binding:"gt=0"`
}

type UpsertBatchFeeStructureRequest struct {
	BatchID   string            `json:"batch_id" binding:"required,uuid"`
	SessionID string            `json:"session_id" binding:"required,uuid"`
	Name      string            `json:"name" binding:"required,max=150"`
	LineItems []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
}

type ListBatchFeeStructuresRequest struct {
	SessionID string `form:"session_id" binding:"omitempty,uuid"`
}

type ApplyRequest struct {
	OverwriteExisting bool `json:"overwrite_existing"`
}

type LineItemResponse struct {
	ID          string `json:"id"`
	ComponentID string `json:"component_id"`
	Amount      int64  `json:"amount"`
}

type BatchFeeStructureResponse struct {
	ID          string             `json:"id"`
	BatchID     string             `json:"batch_id"`
	SessionID   string             `json:"session_id"`
	Name        string             `json:"name"`
	TotalAmount int64              `json:"total_amount"`
	IsActive    bool               `json:"is_active"`
	LineItems   []LineItemResponse `json:"line_items"`
}

type UpsertResponse struct {
	Structure BatchFeeStructureResponse `json:"structure"`
	Operation string                    `json:"operation"`
}

type BlockedStudent struct {
	StudentID   string `json:"student_id"`
	StructureID string `json:"structure_id"`
	PaidAmount  int64  `json:"paid_amount"`
}

// OverwriteBlocked lists the students whose existing structures already carry payments.
type OverwriteBlocked struct {
	Students []BlockedStudent `json:"students"`
}

type ApplyResult struct {
	Applied  int               `json:"applied"`
	Skipped  int               `json:"skipped"`
	Replaced int               `json:"replaced"`
	Blocked  *OverwriteBlocked `json:"blocked,omitempty"`
}
