package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// S3-compatible object storage for submission and warranty attachments.
// Connection settings come from the environment.
func getS3Client() (*s3.S3, string, error) {
	var (
		accessKey = os.Getenv("S3_ACCESS_KEY")
		secretKey = os.Getenv("S3_SECRET_KEY")
		bucket    = os.Getenv("S3_BUCKET")
		region    = os.Getenv("S3_REGION")
		endpoint  = os.Getenv("S3_ENDPOINT")
	)
	if bucket == "" {
		return nil, "", fmt.Errorf("S3_BUCKET is not set")
	}
	if region == "" {
		region = "us-east-1"
	}
	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Endpoint:    aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, "", err
	}
	return s3.New(sess), bucket, nil
}

// UploadFileToS3 stores the file under folder/<uuid><ext> and returns the
// public URL used as the attachment's opaque storage key.
func UploadFileToS3(file []byte, fileName, folder, contentType string) (string, error) {
	client, bucket, err := getS3Client()
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), filepath.Ext(fileName))
	_, err = client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("private"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}

	return fmt.Sprintf("%s/%s/%s", os.Getenv("S3_PUBLIC_BASE"), bucket, key), nil
}

// DeleteFileFromS3 removes an object by the key part of its storage URL.
func DeleteFileFromS3(key string) error {
	client, bucket, err := getS3Client()
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}
