package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

var ErrNoBucket = errors.New("no S3 bucket configured")

// S3 stores raw payloads. Every method fails with ErrNoBucket when no bucket is configured.
type S3 interface {
	Enabled() bool
	PutObject(ctx context.Context, directory, name, contentType string, data []byte) (key string, err error)
}

type s3Impl struct {
	Client *s3.Client
	bucket string
	otel   otel.Otel
}

func (svc *s3Impl) Enabled() bool {
	return svc.bucket != ""
}

func (svc *s3Impl) PutObject(ctx context.Context, directory, name, contentType string, data []byte) (key string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".PutObject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !svc.Enabled() {
		return constant.Empty, ErrNoBucket
	}

	key = path.Join(directory, name)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: key,
		otelAttrBucket:    svc.bucket,
	})

	reader := bytes.NewReader(data)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return key, nil
}

func New(config *config.Config, otel otel.Otel) S3 {
	settings := config.External.S3

	impl := &s3Impl{
		bucket: settings.BucketName,
		otel:   otel,
	}

	if settings.BucketName == "" {
		log.Info().Msg("No S3 bucket configured, payload archive disabled")

		return impl
	}

	region := settings.Region
	if region == "" {
		region = defaultRegion
	}

	options := []func(*awsConfig.LoadOptions) error{awsConfig.WithRegion(region)}

	if settings.AccessKeyID != "" {
		options = append(options, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(), options...)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	impl.Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return impl
}
