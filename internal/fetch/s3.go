package fetch

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bdentino/compose-addons/internal/compose"
)

// s3API is the slice of the S3 client the transport needs. Swapped out
// in tests.
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// newS3Client builds the S3 client from the ambient AWS configuration
// (environment, shared config files, instance role).
var newS3Client = func(ctx context.Context) (s3API, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// fetchS3 retrieves s3://bucket/key and parses the object body. Missing
// buckets, missing objects, and transport errors all surface as the same
// fetch Error carrying the URL.
func fetchS3(ctx context.Context, loc Location) (compose.Document, error) {
	target := loc.String()

	client, err := newS3Client(ctx)
	if err != nil {
		return nil, &Error{URL: target, Err: err}
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Host),
		Key:    aws.String(strings.TrimPrefix(loc.Path, "/")),
	})
	if err != nil {
		return nil, &Error{URL: target, Err: err}
	}
	defer out.Body.Close()

	return compose.Read(out.Body)
}
