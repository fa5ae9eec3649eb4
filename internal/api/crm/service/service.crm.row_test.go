// Package crmsvc - Test resolver cho các dòng import semi-structured.
package crmsvc

import (
	"testing"

	crmdto "folk_crm/internal/api/crm/dto"
)

func TestResolveRow_ArabicAliases(t *testing.T) {
	row := crmdto.ImportRow{
		"اسم العميل":      "أحمد علي",
		"رقم الهاتف":      "0101 234 5678",
		"المحافظة":        "القاهرة",
		"العنوان":         "شارع النيل 12",
		"كود الفرع":       "BR-01",
		"رقم الفاتورة":    "INV-100",
		"المبلغ الإجمالي": "4,500 جنيه",
		"اسم المنتج":      "قهوة",
		"تاريخ الفاتورة":  "2026-03-15",
	}

	resolved := ResolveRow(row)
	if resolved.Name != "أحمد علي" {
		t.Errorf("Name = %q, mong đợi %q", resolved.Name, "أحمد علي")
	}
	if resolved.Phone != "01012345678" {
		t.Errorf("Phone = %q, mong đợi %q", resolved.Phone, "01012345678")
	}
	if resolved.Governorate != "القاهرة" {
		t.Errorf("Governorate = %q", resolved.Governorate)
	}
	if resolved.BranchID != "BR-01" {
		t.Errorf("BranchID = %q, mong đợi BR-01", resolved.BranchID)
	}
	if resolved.InvoiceCode != "INV-100" {
		t.Errorf("InvoiceCode = %q, mong đợi INV-100", resolved.InvoiceCode)
	}
	if resolved.Amount != 4500 {
		t.Errorf("Amount = %v, mong đợi 4500", resolved.Amount)
	}
	if resolved.ProductName != "قهوة" {
		t.Errorf("ProductName = %q", resolved.ProductName)
	}
	if resolved.Date == 0 {
		t.Error("Date không được parse từ 2026-03-15")
	}
}

func TestResolveRow_AliasPriority(t *testing.T) {
	// Alias tiếng Ả Rập đứng trước trong danh sách ưu tiên
	row := crmdto.ImportRow{
		"اسم العميل": "محمد",
		"name":       "Mohamed",
	}
	resolved := ResolveRow(row)
	if resolved.Name != "محمد" {
		t.Errorf("Name = %q, alias ưu tiên phải thắng", resolved.Name)
	}

	// Alias ưu tiên rỗng thì lấy alias tiếp theo
	row = crmdto.ImportRow{
		"اسم العميل": "  ",
		"name":       "Mohamed",
	}
	resolved = ResolveRow(row)
	if resolved.Name != "Mohamed" {
		t.Errorf("Name = %q, alias rỗng phải bị bỏ qua", resolved.Name)
	}
}

func TestResolveRow_NumericValues(t *testing.T) {
	// JSON number cho phone và amount
	row := crmdto.ImportRow{
		"phone":  float64(1012345678),
		"amount": float64(2000),
	}
	resolved := ResolveRow(row)
	if resolved.Phone != "1012345678" {
		t.Errorf("Phone = %q, mong đợi 1012345678", resolved.Phone)
	}
	if resolved.Amount != 2000 {
		t.Errorf("Amount = %v, mong đợi 2000", resolved.Amount)
	}
}

func TestResolvedRow_IsBlank(t *testing.T) {
	blank := ResolveRow(crmdto.ImportRow{"المبلغ الإجمالي": "3000"})
	if !blank.IsBlank() {
		t.Error("Dòng không có tên và số điện thoại phải là blank")
	}

	withName := ResolveRow(crmdto.ImportRow{"name": "Sara"})
	if withName.IsBlank() {
		t.Error("Dòng có tên không được coi là blank")
	}

	withPhone := ResolveRow(crmdto.ImportRow{"phone": "0101111111"})
	if withPhone.IsBlank() {
		t.Error("Dòng có số điện thoại không được coi là blank")
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"3000", 3000},
		{"1,250.50", 1250.50},
		{"4500 EGP", 4500},
		{"-200", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		got := parseAmount(tc.raw)
		if got != tc.want {
			t.Errorf("parseAmount(%q) = %v, mong đợi %v", tc.raw, got, tc.want)
		}
	}
}

func TestParseRowDate(t *testing.T) {
	if got := parseRowDate("2026-03-15"); got == 0 {
		t.Error("parseRowDate không nhận định dạng 2006-01-02")
	}
	if got := parseRowDate("15/03/2026"); got == 0 {
		t.Error("parseRowDate không nhận định dạng 02/01/2006")
	}
	if got := parseRowDate("1760000000000"); got != 1760000000000 {
		t.Errorf("parseRowDate epoch ms = %d, mong đợi 1760000000000", got)
	}
	if got := parseRowDate("không phải ngày"); got != 0 {
		t.Errorf("parseRowDate với chuỗi rác = %d, mong đợi 0", got)
	}
}
