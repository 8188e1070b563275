package milvus

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"missing collection", errors.New("can't find collection[database=default][collection=c1]"), ErrNotFound},
		{"collection not found", errors.New("collection not found[collection=c1]"), ErrNotFound},
		{"index not exist", errors.New("index not exist"), ErrNotFound},
		{"duplicate collection", errors.New("collection c1 already exist"), ErrAlreadyExists},
		{"connection refused", errors.New("dial tcp 127.0.0.1:19530: connect: connection refused"), ErrConnection},
		{"grpc unavailable", errors.New("rpc error: code = Unavailable desc = transport is closing"), ErrConnection},
		{"deadline", errors.New("context deadline exceeded"), ErrConnection},
		{"anything else", errors.New("rate limit quota exceeded"), ErrService},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			// The original server message must survive classification.
			assert.Contains(t, got.Error(), tt.err.Error())
		})
	}
}

func TestKind(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "ConnectionError", Kind(fmt.Errorf("op: %w", ErrConnection)))
	assert.Equal(t, "NotFoundError", Kind(fmt.Errorf("op: %w", ErrNotFound)))
	assert.Equal(t, "AlreadyExistsError", Kind(fmt.Errorf("op: %w", ErrAlreadyExists)))
	assert.Equal(t, "ValidationError", Kind(fmt.Errorf("op: %w", ErrValidation)))
	assert.Equal(t, "ServiceError", Kind(fmt.Errorf("op: %w", ErrService)))
	assert.Equal(t, "ServiceError", Kind(errors.New("unclassified")))
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsConnectionError(fmt.Errorf("x: %w", ErrConnection)))
	assert.True(t, IsNotFoundError(fmt.Errorf("x: %w", ErrNotFound)))
	assert.True(t, IsAlreadyExistsError(fmt.Errorf("x: %w", ErrAlreadyExists)))
	assert.True(t, IsValidationError(fmt.Errorf("x: %w", ErrValidation)))
	assert.False(t, IsNotFoundError(fmt.Errorf("x: %w", ErrService)))
}
