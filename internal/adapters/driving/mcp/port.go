package mcp

import (
	"fmt"
	"net"
)

// Default range scanned when HTTP mode is requested without a port.
const (
	DefaultPortStart = 8765
	DefaultPortEnd   = 8865
)

// FindAvailablePort returns the first port in [start, end] that can be bound
// on the loopback interface.
func FindAvailablePort(start, end int) (int, error) {
	if start <= 0 || end < start {
		return 0, fmt.Errorf("invalid port range %d-%d", start, end)
	}
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			_ = listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}
