package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	vminiconfig "github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/export"
)

func exportCmd(configDir *string) *cobra.Command {
	var (
		clicks  int
		bucket  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload an HTML snapshot of the counter demo to S3",
		Long: `Render the counter demo after a number of clicks and upload the HTML to S3.

Credentials come from the default AWS chain: environment variables,
shared config profiles, SSO and instance metadata. Bucket, prefix,
region and endpoint come from the export section of vmini.json.

Examples:
  vmini export --bucket=my-snapshots
  vmini export --clicks=2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Export.Bucket = bucket
			}

			res, err := renderDemo(clicks, false, newLogger(cfg, os.Stderr))
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := newS3Client(ctx, cfg.Export)
			if err != nil {
				return err
			}

			ex := export.New(client, cfg.Export.Bucket, cfg.Export.Prefix)
			key, err := ex.Put(ctx, res.HTML)
			if err != nil {
				return err
			}

			success("Exported %s to s3://%s/%s", humanize.Bytes(uint64(res.Size)), ex.Bucket(), key)
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 0, "Number of clicks on the counter button")
	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket (default from vmini.json)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Upload timeout")

	return cmd
}

// newS3Client builds an S3 client from the export config and the default
// AWS credential chain (environment, shared config and profiles, SSO, IMDS).
func newS3Client(ctx context.Context, cfg vminiconfig.ExportConfig) (*s3.Client, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.New("E301").
			WithDetail("loading AWS configuration").
			WithSuggestion("Check AWS_PROFILE, ~/.aws/config and the AWS_* environment variables").
			Wrap(err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
