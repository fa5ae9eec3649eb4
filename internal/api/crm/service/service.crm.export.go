package crmsvc

// Export formatter — trải phẳng khách hàng + hóa đơn liên quan thành file CSV.
// File xuất UTF-8 kèm BOM để Excel hiển thị đúng tiếng Ả Rập; số điện thoại
// được prefix bằng tab để spreadsheet không diễn giải lại thành số.

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
)

// ExportFileName là tên file đính kèm trong header Content-Disposition.
const ExportFileName = "عملاء_ومشترياتهم.csv"

// exportHeader là dòng tiêu đề cố định của file xuất.
var exportHeader = []string{
	"اسم العميل",
	"رقم الهاتف",
	"رابط التواصل",
	"المحافظة",
	"العنوان",
	"رقم الفاتورة",
	"اسم المنتج",
	"سعر المنتج",
	"التاريخ",
	"الفرع",
}

// ExportService xuất dữ liệu khách hàng và lịch sử mua hàng ra CSV.
type ExportService struct {
	store RecordStore
}

// NewExportService tạo export service trên MongoDB record store.
func NewExportService() (*ExportService, error) {
	store, err := NewMongoRecordStore()
	if err != nil {
		return nil, err
	}
	return NewExportServiceWithStore(store), nil
}

// NewExportServiceWithStore tạo export service trên record store bất kỳ.
func NewExportServiceWithStore(store RecordStore) *ExportService {
	return &ExportService{store: store}
}

// ExportCustomersCSV trải phẳng toàn bộ khách hàng thành CSV:
//   - Mỗi entry sổ điểm × mỗi dòng sản phẩm của hóa đơn tương ứng = một dòng xuất.
//   - Entry có hóa đơn không tìm thấy hoặc không có sản phẩm: một dòng fallback
//     dựng từ details/amount của chính entry đó.
//   - Khách có sổ điểm trống: đúng một dòng với các cột hóa đơn/sản phẩm trống.
func (s *ExportService) ExportCustomersCSV(ctx context.Context) ([]byte, error) {
	customers, err := s.store.AllCustomers(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	// BOM để Excel nhận UTF-8
	buf.WriteString("\uFEFF")

	writer := csv.NewWriter(&buf)
	if err := writer.Write(exportHeader); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi ghi dòng tiêu đề CSV", common.StatusInternalServerError, err)
	}

	for i := range customers {
		if err := s.writeCustomerRows(ctx, writer, &customers[i]); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi ghi dữ liệu CSV", common.StatusInternalServerError, err)
	}
	return buf.Bytes(), nil
}

// writeCustomerRows ghi các dòng xuất của một khách hàng.
func (s *ExportService) writeCustomerRows(ctx context.Context, writer *csv.Writer, customer *crmmodels.Customer) error {
	if len(customer.Log) == 0 {
		return writer.Write(s.buildRow(customer, "", "", "", ""))
	}

	for i := range customer.Log {
		entry := &customer.Log[i]

		invoice, err := s.store.FindInvoiceByCode(ctx, entry.InvoiceID)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return err
		}

		if invoice == nil || len(invoice.Products) == 0 {
			// Fallback: dựng dòng từ chính entry sổ điểm
			row := s.buildRow(customer, entry.InvoiceID, entry.Details, formatAmount(entry.Amount), formatExportDate(entry.Date))
			if err := writer.Write(row); err != nil {
				return err
			}
			continue
		}

		for _, product := range invoice.Products {
			row := s.buildRow(customer, invoice.InvoiceCode, product.ProductName, formatAmount(product.Price), formatExportDate(entry.Date))
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildRow dựng một dòng xuất theo đúng thứ tự cột của exportHeader.
func (s *ExportService) buildRow(customer *crmmodels.Customer, invoiceID, productName, price, date string) []string {
	return []string{
		customer.Name,
		protectPhone(customer.Phone),
		contactLink(customer.Phone),
		customer.Governorate,
		customer.StreetAddress,
		invoiceID,
		productName,
		price,
		date,
		customer.PrimaryBranchID,
	}
}

// protectPhone prefix số điện thoại bằng tab để spreadsheet giữ nguyên dạng text
// (không bị cắt số 0 đầu hay chuyển sang scientific notation).
func protectPhone(phone string) string {
	if phone == "" {
		return ""
	}
	return "\t" + phone
}

// contactLink dựng link wa.me từ số điện thoại đã chuẩn hóa.
func contactLink(phone string) string {
	if phone == "" {
		return ""
	}
	return "https://wa.me/" + phone
}

// formatAmount in giá trị tiền, bỏ phần thập phân khi tròn.
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return strconv.FormatInt(int64(amount), 10)
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// formatExportDate in ngày dạng YYYY-MM-DD; timestamp 0 in chuỗi rỗng.
func formatExportDate(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}
