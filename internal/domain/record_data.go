package domain

import "context"

//go:generate mockgen -destination mocks/mock_record_data_service.go -package mocks github.com/recordhub/recordhub/internal/domain RecordDataServiceInterface

// RecordDataServiceInterface reads row documents of registered tables
type RecordDataServiceInterface interface {
	List(ctx context.Context, tableName string, params PageParams) (*SearchHits, error)
	Retrieve(ctx context.Context, tableName, id string) (*SearchHits, error)
}
