// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"errors"
	"testing"
)

func TestNewUploader_NilArguments(t *testing.T) {
	if _, err := NewUploader(nil, nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewUploader(nil, nil): got %v, want %v", err, ErrNilDevice)
	}
}

func TestNewUploaderFromHandle_NilHandle(t *testing.T) {
	if _, err := NewUploaderFromHandle(nil); !errors.Is(err, ErrNilDevice) {
		t.Errorf("NewUploaderFromHandle(nil): got %v, want %v", err, ErrNilDevice)
	}
}

func TestNewUploaderFromHandle_NullDevice(t *testing.T) {
	// The null handle exposes no HAL types, so uploader creation fails
	// instead of producing an uploader that would crash on first use.
	if _, err := NewUploaderFromHandle(NullDeviceHandle{}); err == nil {
		t.Error("NewUploaderFromHandle(NullDeviceHandle{}): expected an error")
	}
}
