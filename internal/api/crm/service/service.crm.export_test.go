// Package crmsvc - Test export CSV khách hàng và lịch sử mua hàng.
package crmsvc

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	crmmodels "folk_crm/internal/api/crm/models"
)

// parseExportCSV bỏ BOM rồi parse lại toàn bộ các dòng.
func parseExportCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	content := strings.TrimPrefix(string(data), "\uFEFF")
	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("Không parse lại được CSV đã xuất: %v", err)
	}
	return records
}

func TestExportCustomersCSV_BOMAndHeader(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewExportServiceWithStore(store)

	data, err := svc.ExportCustomersCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCustomersCSV lỗi: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("\uFEFF")) {
		t.Error("File xuất phải bắt đầu bằng UTF-8 BOM")
	}

	records := parseExportCSV(t, data)
	if len(records) != 1 {
		t.Fatalf("Store rỗng phải xuất đúng 1 dòng tiêu đề, có %d dòng", len(records))
	}
	header := records[0]
	if len(header) != len(exportHeader) {
		t.Fatalf("Tiêu đề có %d cột, mong đợi %d", len(header), len(exportHeader))
	}
	if header[0] != "اسم العميل" || header[5] != "رقم الفاتورة" {
		t.Errorf("Tiêu đề sai: %v", header)
	}
}

func TestExportCustomersCSV_ProductRows(t *testing.T) {
	store := newFakeRecordStore()
	store.invoices["INV-1"] = &crmmodels.Invoice{
		InvoiceCode: "INV-1",
		Products: []crmmodels.InvoiceProduct{
			{ProductName: "قهوة", Price: 1500, Quantity: 1},
			{ProductName: "شاي", Price: 500, Quantity: 2},
		},
	}
	store.customers = append(store.customers, &crmmodels.Customer{
		Name:            "Sara",
		Phone:           "0101111111",
		Governorate:     "القاهرة",
		StreetAddress:   "شارع النيل",
		PrimaryBranchID: "BR-01",
		Log: []crmmodels.LedgerEntry{
			{InvoiceID: "INV-1", Date: 1760000000000, Details: "قهوة", Amount: 2000, PointsChange: 50},
		},
	})

	svc := NewExportServiceWithStore(store)
	data, err := svc.ExportCustomersCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCustomersCSV lỗi: %v", err)
	}

	records := parseExportCSV(t, data)
	// Tiêu đề + hai dòng sản phẩm của INV-1
	if len(records) != 3 {
		t.Fatalf("Số dòng = %d, mong đợi 3 (tiêu đề + 2 sản phẩm)", len(records))
	}

	first := records[1]
	if first[0] != "Sara" {
		t.Errorf("Cột tên = %q, mong đợi Sara", first[0])
	}
	if first[1] != "\t0101111111" {
		t.Errorf("Cột điện thoại = %q, phải có prefix tab", first[1])
	}
	if first[2] != "https://wa.me/0101111111" {
		t.Errorf("Cột link = %q, mong đợi link wa.me", first[2])
	}
	if first[5] != "INV-1" || first[6] != "قهوة" || first[7] != "1500" {
		t.Errorf("Cột hóa đơn/sản phẩm sai: %v", first)
	}

	second := records[2]
	if second[6] != "شاي" || second[7] != "500" {
		t.Errorf("Dòng sản phẩm thứ hai sai: %v", second)
	}
}

func TestExportCustomersCSV_FallbackRow(t *testing.T) {
	store := newFakeRecordStore()
	// Entry trỏ đến hóa đơn không tồn tại trong store
	store.customers = append(store.customers, &crmmodels.Customer{
		Name:  "Omar",
		Phone: "0102222222",
		Log: []crmmodels.LedgerEntry{
			{InvoiceID: "INV-GONE", Details: "مشتريات مستوردة", Amount: 3000, Date: 1760000000000},
		},
	})

	svc := NewExportServiceWithStore(store)
	data, err := svc.ExportCustomersCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCustomersCSV lỗi: %v", err)
	}

	records := parseExportCSV(t, data)
	if len(records) != 2 {
		t.Fatalf("Số dòng = %d, mong đợi 2 (tiêu đề + fallback)", len(records))
	}

	row := records[1]
	if row[5] != "INV-GONE" {
		t.Errorf("Cột hóa đơn = %q, mong đợi INV-GONE", row[5])
	}
	if row[6] != "مشتريات مستوردة" {
		t.Errorf("Cột sản phẩm fallback = %q, phải lấy từ details của entry", row[6])
	}
	if row[7] != "3000" {
		t.Errorf("Cột giá fallback = %q, phải lấy từ amount của entry", row[7])
	}
	if row[8] == "" {
		t.Error("Cột ngày fallback không được rỗng khi entry có date")
	}
}

func TestExportCustomersCSV_EmptyLedger(t *testing.T) {
	store := newFakeRecordStore()
	store.customers = append(store.customers, &crmmodels.Customer{
		Name:        "Nour",
		Phone:       "0103333333",
		Governorate: "الإسكندرية",
		Log:         []crmmodels.LedgerEntry{},
	})

	svc := NewExportServiceWithStore(store)
	data, err := svc.ExportCustomersCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCustomersCSV lỗi: %v", err)
	}

	records := parseExportCSV(t, data)
	if len(records) != 2 {
		t.Fatalf("Số dòng = %d, mong đợi 2 (tiêu đề + 1 dòng trống)", len(records))
	}

	row := records[1]
	if row[0] != "Nour" || row[3] != "الإسكندرية" {
		t.Errorf("Cột danh tính sai: %v", row)
	}
	for _, idx := range []int{5, 6, 7, 8} {
		if row[idx] != "" {
			t.Errorf("Cột %d phải rỗng khi khách chưa có sổ điểm, có %q", idx, row[idx])
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(2000); got != "2000" {
		t.Errorf("formatAmount(2000) = %q, mong đợi 2000", got)
	}
	if got := formatAmount(1250.5); got != "1250.5" {
		t.Errorf("formatAmount(1250.5) = %q, mong đợi 1250.5", got)
	}
}

func TestFormatExportDate(t *testing.T) {
	if got := formatExportDate(0); got != "" {
		t.Errorf("formatExportDate(0) = %q, mong đợi rỗng", got)
	}
	if got := formatExportDate(1760000000000); got != "2025-10-09" {
		t.Errorf("formatExportDate(1760000000000) = %q, mong đợi 2025-10-09", got)
	}
}
