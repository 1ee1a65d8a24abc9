package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning is returned when another process holds the guard port.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minGuardPort = 20000
	maxGuardPort = 39999
)

// InstanceGuard marks this process as the running instance for as long as
// its loopback listener stays open.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance claims the guard port for appName. When the port is
// taken the error wraps ErrAlreadyRunning and names the address.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := GuardAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener}, nil
}

// GuardAddress maps appName onto a fixed 127.0.0.1 port in the guard range.
func GuardAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", guardPort(appName))
}

func guardPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(maxGuardPort - minGuardPort + 1)
	return minGuardPort + int(hash.Sum32()%span)
}

// Release closes the listener so a later launch can start. A nil guard is a no-op.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}
