package crmsvc

// Import reconciler — lõi của luồng import khách hàng.
// Mỗi dòng được xử lý tuần tự theo thứ tự input: match danh tính, tạo hoặc
// cập nhật khách hàng, tạo hóa đơn nếu chưa có, ghi sổ điểm, upsert task
// chăm sóc. Lỗi của một dòng được gom vào summary, không hủy cả batch.

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	crmdto "folk_crm/internal/api/crm/dto"
	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/logger"
)

// Giá trị mặc định cho dữ liệu import (file nguồn dùng nhãn tiếng Ả Rập).
const (
	defaultImportProduct = "مشتريات مستوردة" // Dòng sản phẩm synthetic khi file không có tên sản phẩm
	welcomeProductName   = "نقاط ترحيبية"    // Sản phẩm của hóa đơn welcome 0 đồng
	welcomeEntryDetails  = "هدية ترحيبية"    // Ghi chú entry welcome trong sổ điểm

	ledgerStatusCompleted = "Completed"
	ledgerStatusWelcome   = "Welcome"
)

// ImportService điều phối việc reconcile một batch dòng import.
type ImportService struct {
	store   RecordStore
	matcher *CustomerMatcher
}

// NewImportService tạo import service trên MongoDB record store.
func NewImportService() (*ImportService, error) {
	store, err := NewMongoRecordStore()
	if err != nil {
		return nil, err
	}
	return NewImportServiceWithStore(store), nil
}

// NewImportServiceWithStore tạo import service trên record store bất kỳ.
func NewImportServiceWithStore(store RecordStore) *ImportService {
	return &ImportService{
		store:   store,
		matcher: NewCustomerMatcher(store),
	}
}

// Reconcile xử lý tuần tự các dòng theo đúng thứ tự input.
// Dòng trống cả tên lẫn số điện thoại bị bỏ qua (không tính là lỗi).
// Lỗi của một dòng được ghi vào summary.Errors và batch tiếp tục chạy.
func (s *ImportService) Reconcile(ctx context.Context, rows []crmdto.ImportRow) *crmdto.ImportSummary {
	batchID := uuid.NewString()
	log := logger.GetAppLogger().WithField("batch_id", batchID)
	log.WithField("rows", len(rows)).Info("Bắt đầu reconcile batch import khách hàng")

	summary := &crmdto.ImportSummary{
		Errors: []crmdto.ImportRowError{},
	}

	for _, row := range rows {
		resolved := ResolveRow(row)
		if resolved.IsBlank() {
			continue
		}

		if err := s.safeProcessRow(ctx, resolved, summary); err != nil {
			log.WithField("error", err.Error()).Warn("Dòng import thất bại, tiếp tục batch")
			summary.Errors = append(summary.Errors, crmdto.ImportRowError{
				Row:   row,
				Error: err.Error(),
			})
		}
	}

	log.WithFields(map[string]interface{}{
		"createdCustomers": summary.CreatedCustomers,
		"updatedCustomers": summary.UpdatedCustomers,
		"createdInvoices":  summary.CreatedInvoices,
		"createdTasks":     summary.CreatedTasks,
		"pointsUpdated":    summary.PointsUpdated,
		"errors":           len(summary.Errors),
	}).Info("Hoàn tất reconcile batch import khách hàng")

	return summary
}

// safeProcessRow bọc processRow với recover: panic của một dòng trở thành
// lỗi của dòng đó, không làm sập batch.
func (s *ImportService) safeProcessRow(ctx context.Context, resolved *ResolvedRow, summary *crmdto.ImportSummary) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lỗi không mong muốn khi xử lý dòng: %v", r)
		}
	}()
	return s.processRow(ctx, resolved, summary)
}

// processRow xử lý một dòng đã resolve. Khách mới được insert TRƯỚC mọi
// side effect (hóa đơn welcome, task, sổ điểm): nếu insert thất bại thì chưa
// có gì được ghi bền, dòng retry sẽ hội tụ thay vì để lại bản ghi mồ côi.
// Các mutation tiếp theo tích lũy in-memory và persist một lần ở cuối hàm.
func (s *ImportService) processRow(ctx context.Context, resolved *ResolvedRow, summary *crmdto.ImportSummary) error {
	customer, err := s.matcher.Match(ctx, resolved.Name, resolved.Phone)
	if err != nil {
		return err
	}

	isNew := customer == nil
	if isNew {
		customer = &crmmodels.Customer{
			CustomerID:      GenerateCustomerID(),
			Name:            resolved.Name,
			Phone:           resolved.Phone,
			Governorate:     resolved.Governorate,
			StreetAddress:   resolved.Address,
			Classification:  crmmodels.ClassificationUnspecified,
			PrimaryBranchID: resolved.BranchID,
			Log:             []crmmodels.LedgerEntry{},
		}
		if err := s.store.InsertCustomer(ctx, customer); err != nil {
			return err
		}
		summary.CreatedCustomers++
		if err := s.applyWelcomeBonus(ctx, customer, summary); err != nil {
			return err
		}
	} else {
		// Last-row-wins cho các field mô tả; customerId và phone-khóa không ghi đè
		if resolved.Name != "" {
			customer.Name = resolved.Name
		}
		if resolved.Governorate != "" {
			customer.Governorate = resolved.Governorate
		}
		if resolved.Address != "" {
			customer.StreetAddress = resolved.Address
		}
		// Branch affinity chỉ gán ở lần resolve đầu tiên
		if customer.PrimaryBranchID == "" && resolved.BranchID != "" {
			customer.PrimaryBranchID = resolved.BranchID
		}
	}

	if resolved.Amount > 0 || resolved.InvoiceCode != "" {
		if err := s.applyPurchase(ctx, customer, resolved, summary); err != nil {
			return err
		}
	}

	if err := s.store.SaveCustomer(ctx, customer); err != nil {
		return err
	}
	if !isNew {
		summary.UpdatedCustomers++
	}

	return nil
}

// applyWelcomeBonus áp dụng quà chào mừng đúng một lần khi tạo khách mới:
// 50 điểm, một hóa đơn welcome 0 đồng, một entry sổ điểm và một task Pending.
// Không retroactive: khách đã tồn tại trước đó không bao giờ nhận lại.
func (s *ImportService) applyWelcomeBonus(ctx context.Context, customer *crmmodels.Customer, summary *crmdto.ImportSummary) error {
	welcomeCode := GenerateWelcomeInvoiceCode()
	now := time.Now().UnixMilli()

	created, err := s.store.InsertInvoice(ctx, &crmmodels.Invoice{
		InvoiceCode: welcomeCode,
		CustomerRef: customer.CustomerID,
		Products: []crmmodels.InvoiceProduct{
			{ProductName: welcomeProductName, Price: 0, Quantity: 1},
		},
		TotalPrice:  0,
		InvoiceDate: now,
		BranchID:    customer.PrimaryBranchID,
	})
	if err != nil {
		return err
	}
	if created {
		summary.CreatedInvoices++
	}

	customer.Points += WelcomeBonusPoints
	customer.TotalPointsEarned += WelcomeBonusPoints
	customer.Log = append(customer.Log, crmmodels.LedgerEntry{
		InvoiceID:    welcomeCode,
		Date:         now,
		Details:      welcomeEntryDetails,
		Amount:       0,
		PointsChange: WelcomeBonusPoints,
		Status:       ledgerStatusWelcome,
	})

	taskCreated, err := s.store.UpsertFeedbackTask(ctx, &crmmodels.FeedbackTask{
		CustomerID:    customer.CustomerID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		InvoiceID:     welcomeCode,
		InvoiceDate:   now,
		BranchID:      customer.PrimaryBranchID,
	})
	if err != nil {
		return err
	}
	if taskCreated {
		summary.CreatedTasks++
	}

	return nil
}

// applyPurchase xử lý phần mua hàng của một dòng: hóa đơn, entry sổ điểm
// (idempotent theo invoiceId) và task chăm sóc.
func (s *ImportService) applyPurchase(ctx context.Context, customer *crmmodels.Customer, resolved *ResolvedRow, summary *crmdto.ImportSummary) error {
	invoiceCode := resolved.InvoiceCode
	if invoiceCode == "" {
		invoiceCode = GenerateInvoiceCode()
	}

	eventDate := resolved.Date
	if eventDate == 0 {
		eventDate = time.Now().UnixMilli()
	}

	productName := resolved.ProductName
	if productName == "" {
		productName = defaultImportProduct
	}

	created, err := s.store.InsertInvoice(ctx, &crmmodels.Invoice{
		InvoiceCode: invoiceCode,
		CustomerRef: customer.CustomerID,
		Products: []crmmodels.InvoiceProduct{
			{ProductName: productName, Price: resolved.Amount, Quantity: 1},
		},
		TotalPrice:  resolved.Amount,
		InvoiceDate: eventDate,
		BranchID:    resolved.BranchID,
	})
	if err != nil {
		return err
	}
	if created {
		summary.CreatedInvoices++
	}

	// Idempotence: mỗi invoiceId chỉ có một entry trong sổ điểm của khách
	if !customer.HasLedgerEntry(invoiceCode) {
		points := PointsEarned(resolved.Amount)
		customer.Log = append(customer.Log, crmmodels.LedgerEntry{
			InvoiceID:    invoiceCode,
			Date:         eventDate,
			Details:      productName,
			Amount:       resolved.Amount,
			PointsChange: points,
			Status:       ledgerStatusCompleted,
		})

		if resolved.Amount > 0 {
			customer.TotalPurchases += resolved.Amount
			customer.PurchaseCount++
			customer.Points += points
			customer.TotalPointsEarned += points
			customer.LastPurchaseDate = eventDate
			// Platinum gán thủ công, không bị công thức hạ bậc
			if customer.Classification != crmmodels.ClassificationPlatinum {
				customer.Classification = Classify(customer.TotalPurchases)
			}
			summary.PointsUpdated++
		}
	}

	taskCreated, err := s.store.UpsertFeedbackTask(ctx, &crmmodels.FeedbackTask{
		CustomerID:    customer.CustomerID,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		InvoiceID:     invoiceCode,
		InvoiceDate:   eventDate,
		BranchID:      resolved.BranchID,
	})
	if err != nil {
		return err
	}
	if taskCreated {
		summary.CreatedTasks++
	}

	return nil
}
