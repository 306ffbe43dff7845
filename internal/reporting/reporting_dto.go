package reporting

type FeeCollectionRequest struct {
	SessionID string `form:"session_id" binding:"required,uuid"`
}

// BatchCollection is one aggregated row as read from the ledger tables.
type BatchCollection struct {
	BatchID      string
	BatchName    string
	StudentCount int64
	TotalNet     int64
	TotalPaid    int64
}

type BatchCollectionResponse struct {
	BatchID      string `json:"batch_id"`
	BatchName    string `json:"batch_name"`
	StudentCount int64  `json:"student_count"`
	TotalNet     int64  `json:"total_net"`
	TotalPaid    int64  `json:"total_paid"`
	Outstanding  int64  `json:"outstanding"`
}

type FeeCollectionResponse struct {
	SessionID    string                    `json:"session_id"`
	Batches      []BatchCollectionResponse `json:"batches"`
	StudentCount int64                     `json:"student_count"`
	TotalNet     int64                     `json:"total_net"`
	TotalPaid    int64                     `json:"total_paid"`
	Outstanding  int64                     `json:"outstanding"`
}
