package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestNewR2Archive_RequiresEndpoint(t *testing.T) {
	_, err := NewR2Archive(context.Background(), R2Options{Bucket: "b"})
	require.Error(t, err)
}

func TestArchive_PutsJSON(t *testing.T) {
	fake := &fakePutter{}
	a := &R2Archive{client: fake, bucket: "gallopin-archive"}

	require.NoError(t, a.Archive(context.Background(), "resets/x.json", []byte(`{"ok":true}`)))

	assert.Equal(t, "gallopin-archive", aws.ToString(fake.in.Bucket))
	assert.Equal(t, "resets/x.json", aws.ToString(fake.in.Key))
	assert.Equal(t, "application/json", aws.ToString(fake.in.ContentType))
	assert.JSONEq(t, `{"ok":true}`, string(fake.body))
}

func TestArchive_PropagatesError(t *testing.T) {
	a := &R2Archive{client: &fakePutter{err: errors.New("denied")}, bucket: "b"}
	assert.Error(t, a.Archive(context.Background(), "k", nil))
}
