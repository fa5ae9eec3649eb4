// Package models - DailyFeedback thuộc domain CRM (daily_feedbacks).
// Phiếu đánh giá trải nghiệm hàng ngày của khách hàng: chất lượng sản phẩm,
// trải nghiệm tại chi nhánh, kênh biết đến cửa hàng. Tham chiếu khách hàng
// qua mã ngoài CUST-, không phải ObjectID.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiscoveryChannels là các kênh khách hàng biết đến cửa hàng.
// Giá trị lưu nguyên văn tiếng Ả Rập theo dữ liệu nguồn.
var DiscoveryChannels = []string{
	"فيسبوك",
	"واتساب",
	"انستاجرام",
	"تيكتوك",
	"قريب من البيت",
	"من الأصدقاء",
	"أخرى",
}

// IsValidDiscoveryChannel kiểm tra giá trị có nằm trong danh sách kênh hợp lệ.
func IsValidDiscoveryChannel(value string) bool {
	for _, channel := range DiscoveryChannels {
		if channel == value {
			return true
		}
	}
	return false
}

// DailyFeedback lưu phiếu đánh giá hàng ngày (daily_feedbacks).
type DailyFeedback struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	CustomerID string `json:"customerId" bson:"customerId" index:"single:1"` // Mã ngoài CUST- của khách hàng

	// Đánh giá — thang điểm 1..5
	ProductQualityRating   int    `json:"productQualityRating" bson:"productQualityRating"`
	ProductQualityNotes    string `json:"productQualityNotes,omitempty" bson:"productQualityNotes,omitempty"`
	BranchExperienceRating int    `json:"branchExperienceRating" bson:"branchExperienceRating"`
	BranchExperienceNotes  string `json:"branchExperienceNotes,omitempty" bson:"branchExperienceNotes,omitempty"`

	DiscoveryChannel string `json:"discoveryChannel,omitempty" bson:"discoveryChannel,omitempty"` // Một trong DiscoveryChannels
	IsFirstVisit     bool   `json:"isFirstVisit" bson:"isFirstVisit"`

	// Các mã hóa đơn liên quan đến lần ghé thăm (INV-... hoặc INV-WELCOME-...)
	RelatedInvoiceIDs []string `json:"relatedInvoiceIds,omitempty" bson:"relatedInvoiceIds,omitempty"`

	BranchID  string `json:"branchId" bson:"branchId" index:"single:1"`
	VisitTime string `json:"visitTime,omitempty" bson:"visitTime,omitempty"` // Buổi ghé thăm, vd "الصبح", "بالليل"
	Date      int64  `json:"date" bson:"date"`                               // Unix ms, mặc định thời điểm tạo

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
