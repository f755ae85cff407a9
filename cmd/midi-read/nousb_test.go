//go:build !usb

package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	notation "github.com/gogpu/gg-notation"
)

func TestRunWithoutUSBSupport(t *testing.T) {
	t.Cleanup(func() { notation.SetLogger(nil) })

	err := run(context.Background(), options{logLevel: "error"}, &bytes.Buffer{})
	if !errors.Is(err, errNoUSB) {
		t.Errorf("err = %v, want errNoUSB", err)
	}
}
