package objectstore

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3API is the part of the S3 client the store needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Impl struct {
	client       S3API
	bucket       string
	directory    string
	publicDomain string
	otel         otel.Otel
}

func NewS3(cfg *config.Config, otl otel.Otel) (ObjectStore, error) {
	conf := cfg.Storage.S3

	if conf.BucketName == constant.Empty {
		return nil, fmt.Errorf("storage bucket name is required for the %s driver", config.StorageDriverS3)
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		conf.AccessKeyID,
		conf.SecretAccessKey,
		"",
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")

		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if conf.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(conf.APIEndpoint)
		}

		o.UsePathStyle = true
		o.Region = conf.Region
	})

	return NewS3WithClient(client, conf.BucketName, conf.Directory, conf.PublicDomain, otl), nil
}

// NewS3WithClient builds the S3 store around an existing client.
func NewS3WithClient(client S3API, bucket, directory, publicDomain string, otl otel.Otel) ObjectStore {
	return &s3Impl{
		client:       client,
		bucket:       bucket,
		directory:    strings.Trim(directory, "/"),
		publicDomain: strings.TrimRight(publicDomain, "/"),
		otel:         otl,
	}
}

func (svc *s3Impl) Save(ctx context.Context, fieldName string, header *multipart.FileHeader) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name := GenerateName(fieldName, header.Filename, time.Now())
	objectKey := path.Join(svc.directory, name)

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   svc.bucket,
	})

	file, err := header.Open()
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(objectKey),
		Body:          file,
		ContentType:   aws.String(header.Header.Get(constant.RequestHeaderContentType)),
		ContentLength: aws.Int64(header.Size),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", svc.publicDomain, objectKey), nil
}

func (svc *s3Impl) Delete(ctx context.Context, url string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectKey := svc.objectKeyFromURL(url)
	if objectKey == constant.Empty {
		return fmt.Errorf("%w: %s", ErrInvalidReference, url)
	}

	scope.SetAttributes(map[string]any{
		otelAttrFileName: objectKey,
		otelAttrBucket:   svc.bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete file from S3")

		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (svc *s3Impl) objectKeyFromURL(url string) string {
	key, ok := strings.CutPrefix(url, svc.publicDomain+"/")
	if !ok {
		return constant.Empty
	}

	return key
}
