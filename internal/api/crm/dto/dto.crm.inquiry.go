// Package dto - DTO cho domain CRM (daily inquiry).
package dto

// DailyInquiryCreateInput dữ liệu tạo yêu cầu hỏi đáp mới.
type DailyInquiryCreateInput struct {
	CustomerName string `json:"customerName" bson:"customerName" validate:"required"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,phone_digits"`
	Governorate  string `json:"governorate,omitempty" bson:"governorate,omitempty"`
	Details      string `json:"details,omitempty" bson:"details,omitempty"`
	Channel      string `json:"channel,omitempty" bson:"channel,omitempty"`
	BranchID     string `json:"branchId,omitempty" bson:"branchId,omitempty"`
	InquiryDate  int64  `json:"inquiryDate,omitempty" bson:"inquiryDate,omitempty"`
}

// DailyInquiryUpdateInput dữ liệu cập nhật yêu cầu hỏi đáp.
type DailyInquiryUpdateInput struct {
	Details string `json:"details,omitempty" bson:"details,omitempty"`
	Channel string `json:"channel,omitempty" bson:"channel,omitempty"`
	Status  string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=Open FollowedUp Closed"`
}
