// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetter struct {
	objects map[string]string
	gotKey  string
}

func (f *fakeGetter) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.gotKey = awsv2.ToString(in.Bucket) + "/" + awsv2.ToString(in.Key)
	body, ok := f.objects[f.gotKey]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri        string
		wantBucket string
		wantKey    string
		wantOK     bool
	}{
		{uri: "s3://bucket/key.yaml", wantBucket: "bucket", wantKey: "key.yaml", wantOK: true},
		{uri: "s3://bucket/deep/path/cfg.json", wantBucket: "bucket", wantKey: "deep/path/cfg.json", wantOK: true},
		{uri: "s3://bucket", wantOK: false},
		{uri: "s3://bucket/", wantOK: false},
		{uri: "s3:///key", wantOK: false},
		{uri: "/tmp/file.yaml", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			bucket, key, ok := ParseS3URI(tt.uri)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestGetObject(t *testing.T) {
	f := &fakeGetter{objects: map[string]string{"b/app.yaml": "foo: bar\n"}}

	b, err := GetObject(context.Background(), f, "b", "app.yaml")
	require.NoError(t, err)
	assert.Equal(t, "foo: bar\n", string(b))
	assert.Equal(t, "b/app.yaml", f.gotKey)

	_, err = GetObject(context.Background(), f, "b", "missing.yaml")
	assert.ErrorContains(t, err, "s3://b/missing.yaml")
}

func TestLoadOptions(t *testing.T) {
	assert.Empty(t, loadOptions())
	assert.Len(t, loadOptions(WithProfile("dev"), WithRegion("us-east-1")), 2)
	assert.Len(t, loadOptions(WithRetryer(func() awsv2.Retryer { return nil })), 1)
}

func TestFetch_BadURI(t *testing.T) {
	_, err := Fetch(context.Background(), "file.yaml")
	assert.ErrorContains(t, err, "invalid s3 uri")
}
