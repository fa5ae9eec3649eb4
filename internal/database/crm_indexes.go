// Package database - Index bổ sung cho CRM (nested fields, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"folk_crm/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCrmAdditionalIndexes tạo các index bổ sung cho CRM.
// Gọi sau CreateIndexes cho từng collection.
func CreateCrmAdditionalIndexes(ctx context.Context, db *mongo.Database) error {
	// customers: (name, phone) — matcher fallback khi phone rỗng hoặc không khớp
	customers := db.Collection(global.MongoDB_ColNames.Customers)
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
			{Key: "phone", Value: 1},
		},
		Options: options.Index().SetName("customer_name_phone"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// customers: log.invoiceId multikey — kiểm tra idempotence khi append ledger entry
	if _, err := customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "log.invoiceId", Value: 1},
		},
		Options: options.Index().SetName("customer_log_invoice").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: customerRef — export join và truy vấn hóa đơn theo khách hàng
	invoices := db.Collection(global.MongoDB_ColNames.Invoices)
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerRef", Value: 1},
		},
		Options: options.Index().SetName("invoice_customer_ref"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// feedback_tasks: (status, invoiceDate) — danh sách nhiệm vụ Pending theo ngày
	tasks := db.Collection(global.MongoDB_ColNames.FeedbackTasks)
	if _, err := tasks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "invoiceDate", Value: -1},
		},
		Options: options.Index().SetName("feedback_task_status_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
