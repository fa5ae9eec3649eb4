// Package dto - DTO cho luồng import/export khách hàng.
package dto

// ImportRow là một dòng dữ liệu semi-structured từ file import.
// Key là tên cột (có thể là tiếng Ả Rập hoặc tiếng Anh tùy file nguồn).
type ImportRow map[string]interface{}

// ImportRequest là payload của endpoint import khách hàng.
type ImportRequest struct {
	Rows []ImportRow `json:"rows" validate:"required"`
}

// ImportRowError ghi nhận một dòng xử lý thất bại.
type ImportRowError struct {
	Row   ImportRow `json:"row"`
	Error string    `json:"error"`
}

// ImportSummary là kết quả tổng hợp của một lần import.
type ImportSummary struct {
	CreatedCustomers int64            `json:"createdCustomers"`
	UpdatedCustomers int64            `json:"updatedCustomers"`
	CreatedInvoices  int64            `json:"createdInvoices"`
	CreatedTasks     int64            `json:"createdTasks"`
	PointsUpdated    int64            `json:"pointsUpdated"`
	Errors           []ImportRowError `json:"errors"`
}

// ImportResponse là response envelope của endpoint import.
type ImportResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Results *ImportSummary `json:"results"`
}

// StateSnapshot là kết quả của endpoint đọc trạng thái tổng hợp.
// Mỗi request đọc trực tiếp từ DB, không cache process-wide.
type StateSnapshot struct {
	TotalCustomers    int64 `json:"totalCustomers"`
	TotalInvoices     int64 `json:"totalInvoices"`
	PendingTasks      int64 `json:"pendingTasks"`
	CompletedTasks    int64 `json:"completedTasks"`
	OpenComplaints    int64 `json:"openComplaints"`
	TotalInquiries    int64 `json:"totalInquiries"`
	GeneratedAt       int64 `json:"generatedAt"` // Unix ms
}
