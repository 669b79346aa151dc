// Package watch follows sound-subsystem hotplug events over udev netlink,
// backing the `spatial devices --watch` mode.
package watch
