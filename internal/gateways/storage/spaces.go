package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sunar87/foodgram/foodgram"
	"github.com/sunar87/foodgram/foodgram/config"
)

type objectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// SpacesStore keeps images in an S3 compatible bucket (DigitalOcean Spaces
// by default) as public objects.
type SpacesStore struct {
	client   objectClient
	bucket   string
	root     string
	endpoint string
}

func NewSpacesStore(ctx context.Context, cfg foodgram.SpacesConfig) (*SpacesStore, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.digitaloceanspaces.com", cfg.Region)
	}

	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...any) (aws.Endpoint, error) {
		return aws.Endpoint{URL: endpoint}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	return newSpacesStore(s3.NewFromConfig(awsCfg), cfg.Bucket, cfg.Root, endpoint), nil
}

func newSpacesStore(client objectClient, bucket, root, endpoint string) *SpacesStore {
	return &SpacesStore{
		client:   client,
		bucket:   bucket,
		root:     strings.Trim(root, "/"),
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

func (s *SpacesStore) key(ref string) string {
	if s.root == "" {
		return ref
	}
	return s.root + "/" + ref
}

func (s *SpacesStore) Save(ctx context.Context, prefix, dataURL string) (string, error) {
	blob, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	uploadCtx, cancel := context.WithTimeout(ctx, config.UploadTimeout)
	defer cancel()

	ref := objectKey(prefix, blob.Ext)
	_, err = s.client.PutObject(uploadCtx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(s.key(ref)),
		Body:         bytes.NewReader(blob.Data),
		ContentType:  aws.String(blob.ContentType),
		CacheControl: aws.String("public, max-age=31536000"),
		ACL:          types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return ref, nil
}

func (s *SpacesStore) Delete(ctx context.Context, ref string) error {
	if !validRef(ref) {
		return fmt.Errorf("invalid image ref %q", ref)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(ref)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// URL builds the virtual-hosted object URL, e.g.
// https://bucket.fra1.digitaloceanspaces.com/root/recipes/images/x.png.
func (s *SpacesStore) URL(ref string) string {
	if ref == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, host, s.key(ref))
}
