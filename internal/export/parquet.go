// Package export archives the order history as Parquet, either to a local
// file or to cloud storage.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/quickbite/quickbite/internal/cloudwriter"
	"github.com/quickbite/quickbite/internal/models"
	"github.com/quickbite/quickbite/internal/repositories"
)

type orderRow struct {
	ID                string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID      string  `parquet:"name=restaurant_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Total             float64 `parquet:"name=total, type=DOUBLE"`
	Status            string  `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	PaymentMethod     string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemCount         int32   `parquet:"name=item_count, type=INT32"`
	City              string  `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	PlacedAt          int64   `parquet:"name=placed_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	EstimatedDelivery int64   `parquet:"name=estimated_delivery, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// WriteLocal exports every order to a Parquet file on disk.
func WriteLocal(ctx context.Context, repo repositories.OrderRepository, path string) (int, error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return 0, fmt.Errorf("creating parquet file %s: %w", path, err)
	}
	return writeOrders(ctx, repo, fw)
}

// WriteCloud exports every order to cloud storage via the writer factory.
func WriteCloud(ctx context.Context, repo repositories.OrderRepository, factory cloudwriter.CloudWriterFactory, bucket, objectPath string) (int, error) {
	cw, err := factory.NewWriter(bucket, objectPath)
	if err != nil {
		return 0, fmt.Errorf("creating cloud writer for %s/%s: %w", bucket, objectPath, err)
	}
	return writeOrders(ctx, repo, &cloudParquetFile{writer: cw})
}

func writeOrders(ctx context.Context, repo repositories.OrderRepository, fw source.ParquetFile) (int, error) {
	orders, err := repo.GetAll(ctx)
	if err != nil {
		fw.Close()
		return 0, err
	}

	pw, err := writer.NewParquetWriter(fw, new(orderRow), 4)
	if err != nil {
		fw.Close()
		return 0, fmt.Errorf("creating parquet writer: %w", err)
	}

	for _, order := range orders {
		if err := pw.Write(toRow(order)); err != nil {
			fw.Close()
			return 0, fmt.Errorf("writing order %s: %w", order.ID, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return 0, fmt.Errorf("finalizing parquet file: %w", err)
	}
	if err := fw.Close(); err != nil {
		return 0, err
	}
	return len(orders), nil
}

func toRow(order models.Order) orderRow {
	return orderRow{
		ID:                order.ID,
		RestaurantID:      order.RestaurantID,
		Total:             order.Total,
		Status:            order.Status,
		PaymentMethod:     order.PaymentMethod,
		ItemCount:         int32(len(order.Items)),
		City:              order.Address.City,
		PlacedAt:          order.PlacedAt.UnixMilli(),
		EstimatedDelivery: order.EstimatedDelivery.UnixMilli(),
	}
}

// cloudParquetFile adapts a CloudWriter to the write side of
// source.ParquetFile. The export path never reads or seeks.
type cloudParquetFile struct {
	writer cloudwriter.CloudWriter
}

func (c *cloudParquetFile) Write(p []byte) (int, error) {
	return c.writer.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.writer.Close()
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	return 0, nil
}
