package crmsvc

// RecordStore là mặt cắt lưu trữ mà reconciler/exporter phụ thuộc vào.
// Tách interface để core logic test được với store in-memory, không cần MongoDB.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	crmmodels "folk_crm/internal/api/crm/models"
	"folk_crm/internal/common"
	"folk_crm/internal/global"
)

// RecordStore cung cấp các thao tác lưu trữ cho luồng reconcile và export.
// Các hàm Find* trả về common.ErrNotFound khi không có bản ghi.
type RecordStore interface {
	FindCustomerByPhone(ctx context.Context, phone string) (*crmmodels.Customer, error)
	FindCustomerByNamePhone(ctx context.Context, name, phone string) (*crmmodels.Customer, error)
	InsertCustomer(ctx context.Context, customer *crmmodels.Customer) error
	SaveCustomer(ctx context.Context, customer *crmmodels.Customer) error
	AllCustomers(ctx context.Context) ([]crmmodels.Customer, error)

	FindInvoiceByCode(ctx context.Context, invoiceCode string) (*crmmodels.Invoice, error)
	// InsertInvoice tạo hóa đơn mới; mã trùng (unique index) được coi như
	// đã tồn tại và trả về created=false, không phải lỗi.
	InsertInvoice(ctx context.Context, invoice *crmmodels.Invoice) (created bool, err error)

	// UpsertFeedbackTask upsert task theo invoiceId; status chỉ set Pending khi tạo mới.
	UpsertFeedbackTask(ctx context.Context, task *crmmodels.FeedbackTask) (created bool, err error)
}

// MongoRecordStore là hiện thực RecordStore trên MongoDB.
type MongoRecordStore struct {
	customers *mongo.Collection
	invoices  *mongo.Collection
	tasks     *mongo.Collection
}

// NewMongoRecordStore tạo record store trên các collection đã đăng ký.
func NewMongoRecordStore() (*MongoRecordStore, error) {
	customers, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Customers, common.ErrNotFound)
	}
	invoices, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Invoices, common.ErrNotFound)
	}
	tasks, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.FeedbackTasks)
	if !ok {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.FeedbackTasks, common.ErrNotFound)
	}
	return &MongoRecordStore{customers: customers, invoices: invoices, tasks: tasks}, nil
}

// FindCustomerByPhone tìm khách hàng theo số điện thoại đã chuẩn hóa.
func (s *MongoRecordStore) FindCustomerByPhone(ctx context.Context, phone string) (*crmmodels.Customer, error) {
	if phone == "" {
		return nil, common.ErrNotFound
	}
	return s.findCustomer(ctx, bson.M{"phone": phone})
}

// FindCustomerByNamePhone tìm khách hàng theo cặp (name, phone) chính xác.
func (s *MongoRecordStore) FindCustomerByNamePhone(ctx context.Context, name, phone string) (*crmmodels.Customer, error) {
	return s.findCustomer(ctx, bson.M{"name": name, "phone": phone})
}

func (s *MongoRecordStore) findCustomer(ctx context.Context, filter bson.M) (*crmmodels.Customer, error) {
	var customer crmmodels.Customer
	err := s.customers.FindOne(ctx, filter).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &customer, nil
}

// InsertCustomer thêm khách hàng mới, gán createdAt/updatedAt.
func (s *MongoRecordStore) InsertCustomer(ctx context.Context, customer *crmmodels.Customer) error {
	now := time.Now().UnixMilli()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	customer.LastModified = now

	_, err := s.customers.InsertOne(ctx, customer)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// SaveCustomer ghi đè toàn bộ khách hàng theo customerId (một lần ghi cho
// mọi mutation tích lũy của một dòng import).
func (s *MongoRecordStore) SaveCustomer(ctx context.Context, customer *crmmodels.Customer) error {
	now := time.Now().UnixMilli()
	customer.UpdatedAt = now
	customer.LastModified = now

	filter := bson.M{"customerId": customer.CustomerID}
	result, err := s.customers.ReplaceOne(ctx, filter, customer)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// AllCustomers trả về toàn bộ khách hàng theo thứ tự tạo.
func (s *MongoRecordStore) AllCustomers(ctx context.Context) ([]crmmodels.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := s.customers.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var customers []crmmodels.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return customers, nil
}

// FindInvoiceByCode tìm hóa đơn theo mã.
func (s *MongoRecordStore) FindInvoiceByCode(ctx context.Context, invoiceCode string) (*crmmodels.Invoice, error) {
	var invoice crmmodels.Invoice
	err := s.invoices.FindOne(ctx, bson.M{"invoiceCode": invoiceCode}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}
	return &invoice, nil
}

// InsertInvoice tạo hóa đơn mới. Mã trùng do unique index (hai request đồng
// thời cùng mã) được coi như đã tồn tại, không phải lỗi của dòng.
func (s *MongoRecordStore) InsertInvoice(ctx context.Context, invoice *crmmodels.Invoice) (bool, error) {
	now := time.Now().UnixMilli()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	_, err := s.invoices.InsertOne(ctx, invoice)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, common.ConvertMongoError(err)
	}
	return true, nil
}

// UpsertFeedbackTask upsert task chăm sóc theo invoiceId.
// Trạng thái Pending chỉ set khi tạo mới, không reset task đã Completed.
func (s *MongoRecordStore) UpsertFeedbackTask(ctx context.Context, task *crmmodels.FeedbackTask) (bool, error) {
	now := time.Now().UnixMilli()
	update := bson.M{
		"$set": bson.M{
			"customerId":    task.CustomerID,
			"customerName":  task.CustomerName,
			"customerPhone": task.CustomerPhone,
			"invoiceDate":   task.InvoiceDate,
			"branchId":      task.BranchID,
			"updatedAt":     now,
		},
		"$setOnInsert": bson.M{
			"invoiceId": task.InvoiceID,
			"status":    crmmodels.FeedbackStatusPending,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	result, err := s.tasks.UpdateOne(ctx, bson.M{"invoiceId": task.InvoiceID}, update, opts)
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return result.UpsertedCount > 0, nil
}
