//go:build usb

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/gousb"
)

// usbEndpoint is an opened bulk IN endpoint. Close releases the interface,
// configuration, device and libusb context in that order.
type usbEndpoint struct {
	*gousb.InEndpoint
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
}

func openUSB(opts options) (io.ReadCloser, error) {
	e := &usbEndpoint{ctx: gousb.NewContext()}
	if err := e.open(opts); err != nil {
		e.Close()
		return nil, err
	}
	slog.Info("opened USB device", "vid", fmt.Sprintf("%04x", opts.vid), "pid", fmt.Sprintf("%04x", opts.pid))
	return e, nil
}

func (e *usbEndpoint) open(opts options) error {
	dev, err := e.ctx.OpenDeviceWithVIDPID(gousb.ID(opts.vid), gousb.ID(opts.pid))
	if err != nil {
		return fmt.Errorf("open USB device: %w", err)
	}
	if dev == nil {
		return fmt.Errorf("no device found with VID:PID %04x:%04x", opts.vid, opts.pid)
	}
	e.dev = dev

	if err := dev.SetAutoDetach(true); err != nil {
		return fmt.Errorf("enable kernel driver auto detach: %w", err)
	}
	if e.cfg, err = dev.Config(opts.config); err != nil {
		return fmt.Errorf("set configuration %d: %w", opts.config, err)
	}
	if e.intf, err = e.cfg.Interface(opts.iface, opts.alt); err != nil {
		return fmt.Errorf("claim interface %d: %w", opts.iface, err)
	}
	if e.InEndpoint, err = e.intf.InEndpoint(opts.endpoint); err != nil {
		return fmt.Errorf("open IN endpoint %d: %w", opts.endpoint, err)
	}
	return nil
}

func (e *usbEndpoint) Close() error {
	if e.intf != nil {
		e.intf.Close()
	}
	var err error
	if e.cfg != nil {
		err = e.cfg.Close()
	}
	if e.dev != nil {
		if cerr := e.dev.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := e.ctx.Close(); err == nil {
		err = cerr
	}
	return err
}
