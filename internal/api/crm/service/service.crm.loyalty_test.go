// Package crmsvc - Test công thức tính điểm và xếp hạng khách hàng.
package crmsvc

import (
	"testing"

	crmmodels "folk_crm/internal/api/crm/models"
)

func TestPointsEarned(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{-500, 0},
		{1999, 0},
		{2000, 50},
		{3999, 50},
		{4000, 100},
		{4500, 100},
		{10000, 250},
		{2000.99, 50},
	}
	for _, tc := range cases {
		got := PointsEarned(tc.amount)
		if got != tc.want {
			t.Errorf("PointsEarned(%v) = %d, mong đợi %d", tc.amount, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		total float64
		want  string
	}{
		{0, crmmodels.ClassificationUnspecified},
		{1999, crmmodels.ClassificationUnspecified},
		{2000, crmmodels.ClassificationBronze},
		{4999, crmmodels.ClassificationBronze},
		{5000, crmmodels.ClassificationSilver},
		{9999, crmmodels.ClassificationSilver},
		{10000, crmmodels.ClassificationGold},
		{250000, crmmodels.ClassificationGold},
	}
	for _, tc := range cases {
		got := Classify(tc.total)
		if got != tc.want {
			t.Errorf("Classify(%v) = %q, mong đợi %q", tc.total, got, tc.want)
		}
	}
}

// Platinum là hạng gán tay, công thức không bao giờ trả về.
func TestClassify_NeverReturnsPlatinum(t *testing.T) {
	for _, total := range []float64{0, 2000, 5000, 10000, 1000000} {
		if Classify(total) == crmmodels.ClassificationPlatinum {
			t.Fatalf("Classify(%v) trả về Platinum, hạng này chỉ được gán thủ công", total)
		}
	}
}
