//go:build !usb

package main

import (
	"errors"
	"io"
)

var errNoUSB = errors.New("midi-read: built without USB support, rebuild with -tags usb or use --input")

func openUSB(options) (io.ReadCloser, error) {
	return nil, errNoUSB
}
