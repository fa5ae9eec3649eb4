// Package crmsvc - Service cho domain CRM.
// File này chứa chính sách điểm thưởng: các hàm thuần, không side effect.
package crmsvc

import (
	"math"

	crmmodels "folk_crm/internal/api/crm/models"
)

const (
	// PointsPerIncrement số điểm cộng cho mỗi bậc chi tiêu trọn vẹn
	PointsPerIncrement = 50
	// AmountPerIncrement giá trị một bậc chi tiêu tính điểm
	AmountPerIncrement = 2000

	// WelcomeBonusPoints điểm tặng một lần duy nhất khi tạo khách hàng mới
	WelcomeBonusPoints = 50

	// Ngưỡng phân hạng theo tổng chi tiêu (cận dưới, xét từ cao xuống)
	GoldThreshold   = 10000
	SilverThreshold = 5000
	BronzeThreshold = 2000
)

// PointsEarned tính điểm thưởng cho một lần mua hàng.
// 50 điểm cho mỗi 2000 đơn vị tiền trọn vẹn; dưới 2000 không có điểm.
func PointsEarned(amount float64) int64 {
	if amount <= 0 {
		return 0
	}
	return int64(math.Floor(amount/AmountPerIncrement)) * PointsPerIncrement
}

// Classify phân hạng khách hàng theo tổng chi tiêu tích lũy.
// Ngưỡng xét từ cao xuống, ngưỡng đầu tiên thỏa sẽ thắng.
// Platinum không sinh từ công thức này (chỉ gán thủ công).
func Classify(totalPurchases float64) string {
	switch {
	case totalPurchases >= GoldThreshold:
		return crmmodels.ClassificationGold
	case totalPurchases >= SilverThreshold:
		return crmmodels.ClassificationSilver
	case totalPurchases >= BronzeThreshold:
		return crmmodels.ClassificationBronze
	default:
		return crmmodels.ClassificationUnspecified
	}
}
