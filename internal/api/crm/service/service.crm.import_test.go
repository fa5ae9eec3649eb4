// Package crmsvc - Test luồng reconcile import trên record store in-memory.
package crmsvc

import (
	"context"
	"fmt"
	"testing"
	"time"

	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
)

// fakeRecordStore là hiện thực in-memory của RecordStore cho unit test.
type fakeRecordStore struct {
	customers []*crmmodels.Customer
	invoices  map[string]*crmmodels.Invoice
	tasks     map[string]*crmmodels.FeedbackTask

	// failInvoiceCode làm InsertInvoice trả lỗi cho một mã cụ thể,
	// dùng để test batch resilience.
	failInvoiceCode string

	// failInsertPhone làm InsertCustomer trả lỗi cho một số điện thoại
	// cụ thể, dùng để test dòng retry sau khi insert khách thất bại.
	failInsertPhone string
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		invoices: map[string]*crmmodels.Invoice{},
		tasks:    map[string]*crmmodels.FeedbackTask{},
	}
}

func (f *fakeRecordStore) FindCustomerByPhone(ctx context.Context, phone string) (*crmmodels.Customer, error) {
	if phone == "" {
		return nil, common.ErrNotFound
	}
	for _, c := range f.customers {
		if c.Phone == phone {
			return cloneCustomer(c), nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRecordStore) FindCustomerByNamePhone(ctx context.Context, name, phone string) (*crmmodels.Customer, error) {
	for _, c := range f.customers {
		if c.Name == name && c.Phone == phone {
			return cloneCustomer(c), nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRecordStore) InsertCustomer(ctx context.Context, customer *crmmodels.Customer) error {
	if f.failInsertPhone != "" && customer.Phone == f.failInsertPhone {
		return fmt.Errorf("lỗi giả lập khi thêm khách hàng %s", customer.Phone)
	}
	now := time.Now().UnixMilli()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	f.customers = append(f.customers, cloneCustomer(customer))
	return nil
}

func (f *fakeRecordStore) SaveCustomer(ctx context.Context, customer *crmmodels.Customer) error {
	for i, c := range f.customers {
		if c.CustomerID == customer.CustomerID {
			f.customers[i] = cloneCustomer(customer)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeRecordStore) AllCustomers(ctx context.Context) ([]crmmodels.Customer, error) {
	out := make([]crmmodels.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *cloneCustomer(c))
	}
	return out, nil
}

func (f *fakeRecordStore) FindInvoiceByCode(ctx context.Context, invoiceCode string) (*crmmodels.Invoice, error) {
	if inv, ok := f.invoices[invoiceCode]; ok {
		return inv, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeRecordStore) InsertInvoice(ctx context.Context, invoice *crmmodels.Invoice) (bool, error) {
	if f.failInvoiceCode != "" && invoice.InvoiceCode == f.failInvoiceCode {
		return false, fmt.Errorf("lỗi giả lập khi ghi hóa đơn %s", invoice.InvoiceCode)
	}
	if _, ok := f.invoices[invoice.InvoiceCode]; ok {
		return false, nil
	}
	f.invoices[invoice.InvoiceCode] = invoice
	return true, nil
}

func (f *fakeRecordStore) UpsertFeedbackTask(ctx context.Context, task *crmmodels.FeedbackTask) (bool, error) {
	if existing, ok := f.tasks[task.InvoiceID]; ok {
		existing.CustomerName = task.CustomerName
		existing.CustomerPhone = task.CustomerPhone
		existing.InvoiceDate = task.InvoiceDate
		existing.BranchID = task.BranchID
		return false, nil
	}
	task.Status = crmmodels.FeedbackStatusPending
	f.tasks[task.InvoiceID] = task
	return true, nil
}

func cloneCustomer(c *crmmodels.Customer) *crmmodels.Customer {
	clone := *c
	clone.Log = append([]crmmodels.LedgerEntry{}, c.Log...)
	return &clone
}

func (f *fakeRecordStore) customerByPhone(phone string) *crmmodels.Customer {
	for _, c := range f.customers {
		if c.Phone == phone {
			return c
		}
	}
	return nil
}

// Khách mới nhận quà chào mừng đúng một lần, kể cả khi xuất hiện
// nhiều dòng trong cùng batch.
func TestReconcile_WelcomeBonusOnce(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewImportServiceWithStore(store)

	rows := []crmdto.ImportRow{
		{"name": "Sara", "phone": "0101111111", "invoiceNumber": "INV-A", "amount": "3000"},
		{"name": "Sara", "phone": "0101111111", "invoiceNumber": "INV-B", "amount": "5000"},
	}

	summary := svc.Reconcile(context.Background(), rows)

	if summary.CreatedCustomers != 1 {
		t.Errorf("CreatedCustomers = %d, mong đợi 1", summary.CreatedCustomers)
	}
	if summary.UpdatedCustomers != 1 {
		t.Errorf("UpdatedCustomers = %d, mong đợi 1", summary.UpdatedCustomers)
	}
	// Welcome + 2 hóa đơn mua hàng
	if summary.CreatedInvoices != 3 {
		t.Errorf("CreatedInvoices = %d, mong đợi 3", summary.CreatedInvoices)
	}
	if summary.CreatedTasks != 3 {
		t.Errorf("CreatedTasks = %d, mong đợi 3", summary.CreatedTasks)
	}

	customer := store.customerByPhone("0101111111")
	if customer == nil {
		t.Fatal("Không tìm thấy khách hàng sau reconcile")
	}

	welcomeEntries := 0
	for _, entry := range customer.Log {
		if entry.Status == ledgerStatusWelcome {
			welcomeEntries++
		}
	}
	if welcomeEntries != 1 {
		t.Errorf("Số entry welcome = %d, mong đợi đúng 1", welcomeEntries)
	}
	if len(customer.Log) != 3 {
		t.Fatalf("Số entry sổ điểm = %d, mong đợi 3 (welcome + 2 mua hàng)", len(customer.Log))
	}
	// Entry mua hàng phải theo đúng thứ tự dòng input
	if customer.Log[1].InvoiceID != "INV-A" || customer.Log[2].InvoiceID != "INV-B" {
		t.Errorf("Thứ tự entry = [%s, %s], mong đợi [INV-A, INV-B]", customer.Log[1].InvoiceID, customer.Log[2].InvoiceID)
	}

	// 50 welcome + 50 (3000) + 100 (5000)
	if customer.Points != 200 {
		t.Errorf("Points = %d, mong đợi 200", customer.Points)
	}
	if customer.TotalPurchases != 8000 {
		t.Errorf("TotalPurchases = %v, mong đợi 8000", customer.TotalPurchases)
	}
	if customer.PurchaseCount != 2 {
		t.Errorf("PurchaseCount = %d, mong đợi 2", customer.PurchaseCount)
	}
	if customer.Classification != crmmodels.ClassificationSilver {
		t.Errorf("Classification = %q, mong đợi Silver với tổng mua 8000", customer.Classification)
	}
}

// Cùng một hóa đơn xuất hiện hai lần không được cộng điểm hai lần.
func TestReconcile_IdempotentOnInvoiceID(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewImportServiceWithStore(store)

	row := crmdto.ImportRow{
		"name": "Omar", "phone": "0102222222",
		"invoiceNumber": "INV-DUP", "amount": "2000",
	}

	first := svc.Reconcile(context.Background(), []crmdto.ImportRow{row, row})
	if len(first.Errors) != 0 {
		t.Fatalf("Batch không lỗi nhưng có %d lỗi: %v", len(first.Errors), first.Errors)
	}

	customer := store.customerByPhone("0102222222")
	if customer == nil {
		t.Fatal("Không tìm thấy khách hàng sau reconcile")
	}
	// welcome + INV-DUP, không có entry trùng
	if len(customer.Log) != 2 {
		t.Errorf("Số entry sổ điểm = %d, mong đợi 2", len(customer.Log))
	}
	if customer.Points != 100 {
		t.Errorf("Points = %d, mong đợi 100 (50 welcome + 50)", customer.Points)
	}
	if customer.PurchaseCount != 1 {
		t.Errorf("PurchaseCount = %d, mong đợi 1", customer.PurchaseCount)
	}
	if first.PointsUpdated != 1 {
		t.Errorf("PointsUpdated = %d, mong đợi 1", first.PointsUpdated)
	}

	// Import lại batch lần nữa: không welcome lại, không cộng điểm lại
	second := svc.Reconcile(context.Background(), []crmdto.ImportRow{row})
	if second.CreatedCustomers != 0 {
		t.Errorf("Re-import: CreatedCustomers = %d, mong đợi 0", second.CreatedCustomers)
	}
	if second.CreatedInvoices != 0 {
		t.Errorf("Re-import: CreatedInvoices = %d, mong đợi 0", second.CreatedInvoices)
	}
	if second.PointsUpdated != 0 {
		t.Errorf("Re-import: PointsUpdated = %d, mong đợi 0", second.PointsUpdated)
	}

	customer = store.customerByPhone("0102222222")
	if customer.Points != 100 {
		t.Errorf("Re-import: Points = %d, mong đợi giữ nguyên 100", customer.Points)
	}
	if len(customer.Log) != 2 {
		t.Errorf("Re-import: số entry sổ điểm = %d, mong đợi giữ nguyên 2", len(customer.Log))
	}
}

// Dòng trống bị bỏ qua im lặng, dòng lỗi được gom vào summary,
// các dòng còn lại vẫn được xử lý.
func TestReconcile_BatchResilience(t *testing.T) {
	store := newFakeRecordStore()
	store.failInvoiceCode = "INV-BAD"
	svc := NewImportServiceWithStore(store)

	rows := []crmdto.ImportRow{
		{"amount": "9999"}, // trống tên và số điện thoại: bỏ qua
		{"name": "Lina", "phone": "0103333333", "invoiceNumber": "INV-BAD", "amount": "2000"},
		{"name": "Hala", "phone": "0104444444", "invoiceNumber": "INV-OK", "amount": "2000"},
	}

	summary := svc.Reconcile(context.Background(), rows)

	if len(summary.Errors) != 1 {
		t.Fatalf("Số lỗi = %d, mong đợi đúng 1 (dòng trống không tính là lỗi)", len(summary.Errors))
	}
	if summary.Errors[0].Error == "" {
		t.Error("Lỗi dòng phải có thông điệp")
	}

	// Dòng sau dòng lỗi vẫn được xử lý bình thường
	if store.customerByPhone("0104444444") == nil {
		t.Error("Dòng hợp lệ sau dòng lỗi không được xử lý")
	}
	if _, ok := store.invoices["INV-OK"]; !ok {
		t.Error("Hóa đơn INV-OK không được tạo")
	}
}

// Dòng chỉ có danh tính (không hóa đơn, không tiền) vẫn tạo khách mới
// với quà chào mừng nhưng không có phần mua hàng.
func TestReconcile_IdentityOnlyRow(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewImportServiceWithStore(store)

	summary := svc.Reconcile(context.Background(), []crmdto.ImportRow{
		{"name": "Nour", "phone": "0105555555"},
	})

	if summary.CreatedCustomers != 1 {
		t.Fatalf("CreatedCustomers = %d, mong đợi 1", summary.CreatedCustomers)
	}

	customer := store.customerByPhone("0105555555")
	if customer == nil {
		t.Fatal("Không tìm thấy khách hàng")
	}
	if customer.Points != WelcomeBonusPoints {
		t.Errorf("Points = %d, mong đợi %d (chỉ welcome)", customer.Points, WelcomeBonusPoints)
	}
	if customer.PurchaseCount != 0 {
		t.Errorf("PurchaseCount = %d, mong đợi 0", customer.PurchaseCount)
	}
	if customer.Classification != crmmodels.ClassificationUnspecified {
		t.Errorf("Classification = %q, mong đợi unspecified", customer.Classification)
	}
	if len(customer.Log) != 1 {
		t.Errorf("Số entry sổ điểm = %d, mong đợi 1 (welcome)", len(customer.Log))
	}
}

// Match theo số điện thoại trước; dòng mới cập nhật field mô tả
// theo kiểu last-row-wins nhưng không ghi đè branch affinity.
func TestReconcile_MatchAndMerge(t *testing.T) {
	store := newFakeRecordStore()
	svc := NewImportServiceWithStore(store)

	svc.Reconcile(context.Background(), []crmdto.ImportRow{
		{"name": "Youssef", "phone": "0106666666", "governorate": "الجيزة", "branchId": "BR-01"},
	})

	// Tên khác nhưng cùng số điện thoại: vẫn match vào khách cũ
	summary := svc.Reconcile(context.Background(), []crmdto.ImportRow{
		{"name": "يوسف", "phone": "0106666666", "governorate": "القاهرة", "branchId": "BR-02"},
	})

	if summary.CreatedCustomers != 0 {
		t.Errorf("CreatedCustomers = %d, mong đợi 0 (match theo phone)", summary.CreatedCustomers)
	}
	if summary.UpdatedCustomers != 1 {
		t.Errorf("UpdatedCustomers = %d, mong đợi 1", summary.UpdatedCustomers)
	}

	customer := store.customerByPhone("0106666666")
	if customer.Name != "يوسف" {
		t.Errorf("Name = %q, mong đợi last-row-wins", customer.Name)
	}
	if customer.Governorate != "القاهرة" {
		t.Errorf("Governorate = %q, mong đợi last-row-wins", customer.Governorate)
	}
	if customer.PrimaryBranchID != "BR-01" {
		t.Errorf("PrimaryBranchID = %q, branch affinity không được ghi đè", customer.PrimaryBranchID)
	}
}

// Insert khách mới thất bại thì dòng đó không để lại bản ghi mồ côi:
// không hóa đơn welcome, không task, không khách. Dòng retry sau đó
// tạo lại khách với đúng một bộ welcome.
func TestReconcile_InsertFailureLeavesNoOrphans(t *testing.T) {
	store := newFakeRecordStore()
	store.failInsertPhone = "0108888888"
	svc := NewImportServiceWithStore(store)

	row := crmdto.ImportRow{
		"name": "Mona", "phone": "0108888888",
		"invoiceNumber": "INV-M", "amount": "3000",
	}

	summary := svc.Reconcile(context.Background(), []crmdto.ImportRow{row})
	if len(summary.Errors) != 1 {
		t.Fatalf("Số lỗi = %d, mong đợi 1", len(summary.Errors))
	}
	if summary.CreatedCustomers != 0 {
		t.Errorf("CreatedCustomers = %d, mong đợi 0", summary.CreatedCustomers)
	}
	if len(store.invoices) != 0 {
		t.Errorf("Số hóa đơn = %d, insert khách thất bại không được tạo hóa đơn", len(store.invoices))
	}
	if len(store.tasks) != 0 {
		t.Errorf("Số task = %d, insert khách thất bại không được tạo task", len(store.tasks))
	}

	// Retry dòng sau khi nguyên nhân lỗi được gỡ
	store.failInsertPhone = ""
	retry := svc.Reconcile(context.Background(), []crmdto.ImportRow{row})
	if len(retry.Errors) != 0 {
		t.Fatalf("Retry không lỗi nhưng có %d lỗi: %v", len(retry.Errors), retry.Errors)
	}
	if retry.CreatedCustomers != 1 {
		t.Errorf("Retry: CreatedCustomers = %d, mong đợi 1", retry.CreatedCustomers)
	}

	customer := store.customerByPhone("0108888888")
	if customer == nil {
		t.Fatal("Không tìm thấy khách hàng sau retry")
	}
	welcomeEntries := 0
	welcomeInvoices := 0
	for _, entry := range customer.Log {
		if entry.Status == ledgerStatusWelcome {
			welcomeEntries++
		}
	}
	for code := range store.invoices {
		if code != "INV-M" {
			welcomeInvoices++
		}
	}
	if welcomeEntries != 1 {
		t.Errorf("Số entry welcome = %d, mong đợi đúng 1", welcomeEntries)
	}
	if welcomeInvoices != 1 {
		t.Errorf("Số hóa đơn welcome = %d, mong đợi đúng 1", welcomeInvoices)
	}
	if customer.Points != 100 {
		t.Errorf("Points = %d, mong đợi 100 (50 welcome + 50)", customer.Points)
	}
}

// Khách hạng Platinum (gán thủ công) không bị công thức hạ bậc.
func TestReconcile_PlatinumNotDowngraded(t *testing.T) {
	store := newFakeRecordStore()
	store.customers = append(store.customers, &crmmodels.Customer{
		CustomerID:     "CUST-PLAT",
		Name:           "VIP",
		Phone:          "0107777777",
		Classification: crmmodels.ClassificationPlatinum,
		Log:            []crmmodels.LedgerEntry{},
	})
	svc := NewImportServiceWithStore(store)

	svc.Reconcile(context.Background(), []crmdto.ImportRow{
		{"name": "VIP", "phone": "0107777777", "invoiceNumber": "INV-P", "amount": "2500"},
	})

	customer := store.customerByPhone("0107777777")
	if customer.Classification != crmmodels.ClassificationPlatinum {
		t.Errorf("Classification = %q, Platinum phải được giữ nguyên", customer.Classification)
	}
	if customer.TotalPurchases != 2500 {
		t.Errorf("TotalPurchases = %v, mong đợi 2500", customer.TotalPurchases)
	}
}
