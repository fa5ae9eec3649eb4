// Package dto - DTO cho domain CRM (daily feedback).
package dto

// DailyFeedbackCreateInput dữ liệu tạo phiếu đánh giá hàng ngày.
// customerId là mã ngoài CUST- của khách hàng, service kiểm tra tồn tại trước khi tạo.
type DailyFeedbackCreateInput struct {
	CustomerID             string   `json:"customerId" bson:"customerId" validate:"required"`
	ProductQualityRating   int      `json:"productQualityRating" bson:"productQualityRating" validate:"required,gte=1,lte=5"`
	ProductQualityNotes    string   `json:"productQualityNotes,omitempty" bson:"productQualityNotes,omitempty" validate:"omitempty,no_xss"`
	BranchExperienceRating int      `json:"branchExperienceRating" bson:"branchExperienceRating" validate:"required,gte=1,lte=5"`
	BranchExperienceNotes  string   `json:"branchExperienceNotes,omitempty" bson:"branchExperienceNotes,omitempty" validate:"omitempty,no_xss"`
	DiscoveryChannel       string   `json:"discoveryChannel,omitempty" bson:"discoveryChannel,omitempty"`
	IsFirstVisit           bool     `json:"isFirstVisit" bson:"isFirstVisit"`
	RelatedInvoiceIDs      []string `json:"relatedInvoiceIds,omitempty" bson:"relatedInvoiceIds,omitempty"`
	BranchID               string   `json:"branchId" bson:"branchId" validate:"required"`
	VisitTime              string   `json:"visitTime,omitempty" bson:"visitTime,omitempty"`
	Date                   int64    `json:"date,omitempty" bson:"date,omitempty"`
}

// DailyFeedbackUpdateInput dữ liệu cập nhật phiếu đánh giá.
// customerId không nằm trong input — phiếu không chuyển sang khách hàng khác.
type DailyFeedbackUpdateInput struct {
	ProductQualityRating   int      `json:"productQualityRating,omitempty" bson:"productQualityRating,omitempty" validate:"omitempty,gte=1,lte=5"`
	ProductQualityNotes    string   `json:"productQualityNotes,omitempty" bson:"productQualityNotes,omitempty" validate:"omitempty,no_xss"`
	BranchExperienceRating int      `json:"branchExperienceRating,omitempty" bson:"branchExperienceRating,omitempty" validate:"omitempty,gte=1,lte=5"`
	BranchExperienceNotes  string   `json:"branchExperienceNotes,omitempty" bson:"branchExperienceNotes,omitempty" validate:"omitempty,no_xss"`
	DiscoveryChannel       string   `json:"discoveryChannel,omitempty" bson:"discoveryChannel,omitempty"`
	RelatedInvoiceIDs      []string `json:"relatedInvoiceIds,omitempty" bson:"relatedInvoiceIds,omitempty"`
	VisitTime              string   `json:"visitTime,omitempty" bson:"visitTime,omitempty"`
}
