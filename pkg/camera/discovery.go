package camera

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// devicePattern matches V4L2 capture devices.
const devicePattern = "/dev/video*"

var deviceNumberRe = regexp.MustCompile(`video(\d+)$`)

// ScanDevices returns the readable camera devices on this host, ordered by
// device number.
func ScanDevices() ([]string, error) {
	matches, err := filepath.Glob(devicePattern)
	if err != nil {
		return nil, err
	}

	var devices []string
	for _, match := range matches {
		if deviceReadable(match) {
			devices = append(devices, match)
		}
	}

	sort.Slice(devices, func(i, j int) bool {
		return deviceNumber(devices[i]) < deviceNumber(devices[j])
	})

	return devices, nil
}

// FirstAvailable returns the lowest-numbered readable camera device.
func FirstAvailable() (string, error) {
	devices, err := ScanDevices()
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", ErrNoDevice
	}
	return devices[0], nil
}

// deviceReadable checks the device node exists and can be opened.
func deviceReadable(device string) bool {
	f, err := os.OpenFile(device, os.O_RDONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// deviceNumber extracts the numeric suffix from a /dev/videoN path.
// Unparseable paths sort last.
func deviceNumber(device string) int {
	m := deviceNumberRe.FindStringSubmatch(device)
	if len(m) != 2 {
		return int(^uint(0) >> 1)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
