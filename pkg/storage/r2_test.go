package storage

import (
	"mime/multipart"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
)

func TestUploadAvatar_NotConfigured(t *testing.T) {
	prev := r2Client
	r2Client = nil
	t.Cleanup(func() { r2Client = prev })

	_, err := UploadAvatar(&multipart.FileHeader{Filename: "me.png"}, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestUploadAvatar_RejectsUnknownExtension(t *testing.T) {
	prev := r2Client
	r2Client = &s3.Client{}
	t.Cleanup(func() { r2Client = prev })

	_, err := UploadAvatar(&multipart.FileHeader{Filename: "me.gif"}, 1)
	assert.ErrorContains(t, err, "unsupported avatar format")
}
