package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/roleprobe/internal/target"
)

// MockUploader is a mock implementation of the task.Uploader interface.
type MockUploader struct {
	mock.Mock
}

// PutEmptyObject records the call and returns the configured error.
func (m *MockUploader) PutEmptyObject(ctx context.Context, loc target.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}
