// Package models - DailyInquiry thuộc domain CRM (daily_inquiries).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyInquiry lưu yêu cầu/hỏi đáp trong ngày của khách (daily_inquiries).
type DailyInquiry struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerName string `json:"customerName" bson:"customerName" validate:"required"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty" index:"single:1" validate:"omitempty,phone_digits"`
	Governorate  string `json:"governorate,omitempty" bson:"governorate,omitempty"`
	Details      string `json:"details,omitempty" bson:"details,omitempty"` // Nội dung khách hỏi
	Channel      string `json:"channel,omitempty" bson:"channel,omitempty"` // Phone | WhatsApp | InStore | Social
	Status       string `json:"status" bson:"status" index:"single:1"`      // Open | FollowedUp | Closed
	BranchID     string `json:"branchId,omitempty" bson:"branchId,omitempty"`
	InquiryDate  int64  `json:"inquiryDate,omitempty" bson:"inquiryDate,omitempty"` // Unix ms

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
