// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"bytes"
	"context"
	"io/ioutil"
	"net/http"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/shipchain/vaultd/fault"
)

// S3 - objects in one bucket below a key prefix
type S3 struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3 - create a session from the credential options
func NewS3(options Options) (*S3, error) {
	if "" == options.Bucket {
		return nil, fault.MissingParameter("bucket")
	}

	config := aws.NewConfig()
	if "" != options.Region {
		config = config.WithRegion(options.Region)
	}
	if "" != options.Endpoint {
		config = config.WithEndpoint(options.Endpoint)
	}
	if options.ForcePathStyle {
		config = config.WithS3ForcePathStyle(true)
	}
	if "" != options.AccessKeyID {
		config = config.WithCredentials(credentials.NewStaticCredentials(options.AccessKeyID, options.SecretAccessKey, ""))
	}

	sess, err := session.NewSession(config)
	if nil != err {
		return nil, fault.StorageDriverFailure(TypeS3, err)
	}
	return NewS3WithClient(s3.New(sess), options.Bucket, options.BasePath), nil
}

// NewS3WithClient - use an existing client
func NewS3WithClient(client s3iface.S3API, bucket string, prefix string) *S3 {
	return &S3{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Name - driver interface
func (s *S3) Name() string { return TypeS3 }

func (s *S3) key(name string) (string, error) {
	clean, err := cleanName(name)
	if nil != err {
		return "", err
	}
	if "" == s.prefix {
		return clean, nil
	}
	return path.Join(s.prefix, clean), nil
}

// Get - fetch a whole object
func (s *S3) Get(ctx context.Context, name string) ([]byte, error) {
	key, err := s.key(name)
	if nil != err {
		return nil, err
	}
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if nil != err {
		return nil, s3Error(err)
	}
	defer out.Body.Close()

	data, err := ioutil.ReadAll(out.Body)
	if nil != err {
		return nil, fault.StorageDriverFailure(TypeS3, err)
	}
	return data, nil
}

// Put - store a whole object
func (s *S3) Put(ctx context.Context, name string, data []byte) error {
	key, err := s.key(name)
	if nil != err {
		return err
	}
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if nil != err {
		return s3Error(err)
	}
	return nil
}

// Exists - head the object
func (s *S3) Exists(ctx context.Context, name string) (bool, error) {
	key, err := s.key(name)
	if nil != err {
		return false, err
	}
	_, err = s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if nil == err {
		return true, nil
	}
	err = s3Error(err)
	if fault.FileNotFound == err {
		return false, nil
	}
	return false, err
}

// URI - s3://bucket/key
func (s *S3) URI(name string) string {
	key, err := s.key(name)
	if nil != err {
		key = name
	}
	return "s3://" + s.bucket + "/" + key
}

// map missing objects to the common not found error
func s3Error(err error) error {
	if reqErr, ok := err.(awserr.RequestFailure); ok && http.StatusNotFound == reqErr.StatusCode() {
		return fault.FileNotFound
	}
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, "NotFound":
			return fault.FileNotFound
		}
	}
	return fault.StorageDriverFailure(TypeS3, err)
}
