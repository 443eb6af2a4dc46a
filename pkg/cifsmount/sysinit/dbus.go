/*
Copyright 2026 The cifsmount Authors All rights reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sysinit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const dbusTimeout = 90 * time.Second

// dbusConn is the subset of *dbus.Conn used by DBus
type dbusConn interface {
	ReloadContext(ctx context.Context) error
	EnableUnitFilesContext(ctx context.Context, files []string, runtime bool, force bool) (bool, []dbus.EnableUnitFileChange, error)
	DisableUnitFilesContext(ctx context.Context, files []string, runtime bool) ([]dbus.DisableUnitFileChange, error)
	StartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	StopUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	RestartUnitContext(ctx context.Context, name string, mode string, ch chan<- string) (int, error)
	ListUnitsByNamesContext(ctx context.Context, units []string) ([]dbus.UnitStatus, error)
	Close()
}

// DBus talks to systemd over its D-Bus API instead of running systemctl
type DBus struct {
	conn dbusConn
}

// NewDBus connects to the system bus
func NewDBus() (*DBus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
	defer cancel()
	conn, err := dbus.NewWithContext(ctx)
	if err != nil {
		klog.Infof("systemd dbus connection failed: %v", err)
		return nil, errors.Wrap(ErrNotSystemd, err.Error())
	}
	return &DBus{conn: conn}, nil
}

// Close releases the bus connection
func (d *DBus) Close() {
	d.conn.Close()
}

// Name returns the name of the init system
func (d *DBus) Name() string {
	return "systemd (dbus)"
}

// DaemonReload reloads systemd configuration
func (d *DBus) DaemonReload() error {
	ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
	defer cancel()
	return errors.Wrap(d.conn.ReloadContext(ctx), "reload")
}

// Active checks if a unit is running
func (d *DBus) Active(svc string) bool {
	st, err := d.unitStatus(svc)
	if err != nil {
		klog.Warningf("unit status %s: %v", svc, err)
		return false
	}
	return st.ActiveState == "active"
}

// Enable enables a unit
func (d *DBus) Enable(svc string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
	defer cancel()
	_, changes, err := d.conn.EnableUnitFilesContext(ctx, []string{svc}, false, true)
	if err != nil {
		return errors.Wrapf(err, "enable %s", svc)
	}
	for _, c := range changes {
		klog.Infof("enable %s: %s %s -> %s", svc, c.Type, c.Filename, c.Destination)
	}
	return nil
}

// EnableNow enables a unit and starts it
func (d *DBus) EnableNow(svc string) error {
	if err := d.Enable(svc); err != nil {
		return err
	}
	return d.Start(svc)
}

// Disable disables a unit
func (d *DBus) Disable(svc string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
	defer cancel()
	changes, err := d.conn.DisableUnitFilesContext(ctx, []string{svc}, false)
	if err != nil {
		return errors.Wrapf(err, "disable %s", svc)
	}
	for _, c := range changes {
		klog.Infof("disable %s: %s %s", svc, c.Type, c.Filename)
	}
	return nil
}

// DisableNow disables a unit and stops it
func (d *DBus) DisableNow(svc string) error {
	if err := d.Disable(svc); err != nil {
		return err
	}
	return d.Stop(svc)
}

// Start starts a unit and waits for the job to finish
func (d *DBus) Start(svc string) error {
	return d.job("start", svc, d.conn.StartUnitContext)
}

// Stop stops a unit and waits for the job to finish
func (d *DBus) Stop(svc string) error {
	return d.job("stop", svc, d.conn.StopUnitContext)
}

// Restart restarts a unit and waits for the job to finish
func (d *DBus) Restart(svc string) error {
	return d.job("restart", svc, d.conn.RestartUnitContext)
}

// Status renders the unit state the way systemctl status summarizes it
func (d *DBus) Status(svc string) (string, error) {
	st, err := d.unitStatus(svc)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "● %s - %s\n", st.Name, st.Description)
	fmt.Fprintf(&sb, "     Loaded: %s\n", st.LoadState)
	fmt.Fprintf(&sb, "     Active: %s (%s)\n", st.ActiveState, st.SubState)
	if st.ActiveState != "active" {
		return sb.String(), errors.Errorf("%s is %s", svc, st.ActiveState)
	}
	return sb.String(), nil
}

type jobFunc func(ctx context.Context, name string, mode string, ch chan<- string) (int, error)

func (d *DBus) job(verb string, svc string, fn jobFunc) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
	defer cancel()

	ch := make(chan string, 1)
	if _, err := fn(ctx, svc, "replace", ch); err != nil {
		return errors.Wrapf(err, "%s %s", verb, svc)
	}
	select {
	case result := <-ch:
		if result != "done" {
			return errors.Errorf("%s %s: job %s", verb, svc, result)
		}
		return nil
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "%s %s", verb, svc)
	}
}

func (d *DBus) unitStatus(svc string) (dbus.UnitStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbusTimeout)
	defer cancel()
	units, err := d.conn.ListUnitsByNamesContext(ctx, []string{svc})
	if err != nil {
		return dbus.UnitStatus{}, errors.Wrapf(err, "list unit %s", svc)
	}
	if len(units) == 0 {
		return dbus.UnitStatus{}, errors.Errorf("unit %s not found", svc)
	}
	return units[0], nil
}
