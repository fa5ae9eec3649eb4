// Package models - Customer thuộc domain CRM (customers).
// Lưu khách hàng cùng sổ điểm thưởng (log) được denormalize từ các lần mua hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các giá trị classification chuẩn của khách hàng.
// Dữ liệu cũ có thể mang giá trị tiếng Ả Rập; normalizer ở tầng boundary
// sẽ quy về các giá trị chuẩn này trước khi vào business logic.
const (
	ClassificationUnspecified = "unspecified"
	ClassificationBronze      = "Bronze"
	ClassificationSilver      = "Silver"
	ClassificationGold        = "Gold"
	ClassificationPlatinum    = "Platinum" // Chỉ gán thủ công, không sinh từ công thức
)

// LedgerEntry là một dòng trong sổ điểm thưởng của khách hàng.
// invoiceId là khóa idempotence: mỗi customer chỉ có tối đa một entry cho mỗi invoiceId.
type LedgerEntry struct {
	InvoiceID    string  `json:"invoiceId" bson:"invoiceId"`
	Date         int64   `json:"date" bson:"date"`                             // Unix milliseconds
	Details      string  `json:"details,omitempty" bson:"details,omitempty"`   // Mô tả sự kiện (tên sản phẩm, ghi chú import...)
	Amount       float64 `json:"amount" bson:"amount"`                         // Giá trị mua hàng của sự kiện
	PointsChange int64   `json:"pointsChange" bson:"pointsChange"`             // Số điểm cộng/trừ
	Status       string  `json:"status,omitempty" bson:"status,omitempty"`     // Trạng thái sự kiện (vd: Completed)
}

// Customer lưu khách hàng (customers).
type Customer struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	// Identity
	CustomerID string `json:"customerId" bson:"customerId" index:"single:1;unique"` // Mã ngoài dạng CUST-<ms>-<random>, bất biến sau khi gán
	Name       string `json:"name" bson:"name" index:"single:1"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty" index:"single:1" validate:"omitempty,phone_digits"` // Chỉ chứa chữ số sau chuẩn hóa

	// Location
	Governorate   string `json:"governorate,omitempty" bson:"governorate,omitempty"`
	StreetAddress string `json:"streetAddress,omitempty" bson:"streetAddress,omitempty"`

	// Loyalty
	Classification   string  `json:"classification" bson:"classification"` // unspecified | Bronze | Silver | Gold | Platinum
	Points           int64   `json:"points" bson:"points"`
	TotalPointsEarned int64  `json:"totalPointsEarned" bson:"totalPointsEarned"`
	TotalPointsUsed  int64   `json:"totalPointsUsed" bson:"totalPointsUsed"`
	TotalPurchases   float64 `json:"totalPurchases" bson:"totalPurchases"`
	PurchaseCount    int64   `json:"purchaseCount" bson:"purchaseCount"`
	LastPurchaseDate int64   `json:"lastPurchaseDate,omitempty" bson:"lastPurchaseDate,omitempty"` // Unix ms

	// Sổ điểm thưởng — append-only theo thứ tự xử lý
	Log []LedgerEntry `json:"log" bson:"log"`

	// Branch affinity — gán ở lần resolve đầu tiên, không ghi đè
	PrimaryBranchID string `json:"primaryBranchId,omitempty" bson:"primaryBranchId,omitempty"`

	// Metadata
	LastModified int64 `json:"lastModified" bson:"lastModified"` // Unix ms, cập nhật ở mọi mutation
	CreatedAt    int64 `json:"createdAt" bson:"createdAt" index:"single:1"`
	UpdatedAt    int64 `json:"updatedAt" bson:"updatedAt" index:"single:1"`
}

// HasLedgerEntry kiểm tra sổ điểm đã có entry cho invoiceId chưa.
func (c *Customer) HasLedgerEntry(invoiceID string) bool {
	for i := range c.Log {
		if c.Log[i].InvoiceID == invoiceID {
			return true
		}
	}
	return false
}
