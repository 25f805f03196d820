package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/brand-engine/configs"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ArtworkArchive keeps a copy of every approved image and returns where it
// can be fetched from.
type ArtworkArchive interface {
	Archive(ctx context.Context, brandID, postID string, image []byte, contentType string) (string, error)
}

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type r2Service struct {
	config cfg.R2

	once   sync.Once
	client objectPutter
	err    error
}

func NewR2Service(r2 cfg.R2) ArtworkArchive {
	if !r2.Enabled() {
		return nopArchive{}
	}
	return &r2Service{config: r2}
}

func (r *r2Service) r2Client(ctx context.Context) (objectPutter, error) {
	r.once.Do(func() {
		awsCfg, err := config.LoadDefaultConfig(ctx,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.AccessKey, r.config.SecretKey, "")),
			config.WithRegion("auto"),
		)
		if err != nil {
			r.err = err
			return
		}
		r.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.AccountID))
		})
	})
	return r.client, r.err
}

func (r *r2Service) Archive(ctx context.Context, brandID, postID string, image []byte, contentType string) (string, error) {
	client, err := r.r2Client(ctx)
	if err != nil {
		return "", fmt.Errorf("r2 client: %w", err)
	}
	return putArtwork(ctx, client, r.config, brandID, postID, image, contentType)
}

func putArtwork(ctx context.Context, client objectPutter, r2 cfg.R2, brandID, postID string, image []byte, contentType string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("artwork/%s/%s/%s.jpg", brandID, postID, id)

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(image),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"brand-id": brandID,
			"post-id":  postID,
		},
	})
	if err != nil {
		return "", err
	}

	if r2.PublicURL != "" {
		return r2.PublicURL + "/" + key, nil
	}
	return key, nil
}

type nopArchive struct{}

func (nopArchive) Archive(context.Context, string, string, []byte, string) (string, error) {
	return "", nil
}
