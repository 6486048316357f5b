package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/quickbite/quickbite/internal/cloudwriter"
	"github.com/quickbite/quickbite/internal/export"
	"github.com/quickbite/quickbite/internal/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the order history as Parquet, locally or to S3",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if err := runExport(context.Background(), cfg); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context, cfg *models.Config) error {
	st, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}

	var count int
	switch cfg.ExportDestination {
	case "s3":
		factory, err := cloudwriter.NewS3WriterFactory(cfg.CloudStorage.Region)
		if err != nil {
			return err
		}
		count, err = export.WriteCloud(ctx, st.orders, factory, cfg.CloudStorage.Bucket, cfg.ExportPath)
		if err != nil {
			return err
		}
		log.Printf("Exported %d orders to s3://%s/%s", count, cfg.CloudStorage.Bucket, cfg.ExportPath)
	default:
		count, err = export.WriteLocal(ctx, st.orders, cfg.ExportPath)
		if err != nil {
			return err
		}
		log.Printf("Exported %d orders to %s", count, cfg.ExportPath)
	}
	return nil
}
