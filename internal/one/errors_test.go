package one

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"authentication",
			errors.New(`OpenNebula API error: [VirtualMachinePoolInfo] User couldn't be authenticated, aborting call.`),
			"Authentication failed. Check ONE_AUTH credentials.",
		},
		{
			"connection refused",
			errors.New(`calling one.vmpool.info: Post "http://localhost:2633/RPC2": dial tcp 127.0.0.1:2633: connect: connection refused`),
			"Connection refused. Check ONE_XMLRPC endpoint.",
		},
		{
			"timeout",
			errors.New("calling one.vmpool.info: context deadline exceeded (Client.Timeout exceeded while awaiting headers); timeout"),
			"Request timed out. Server may be unreachable.",
		},
		{
			"short message passes through",
			errors.New("OpenNebula API error: [VirtualMachineAction] Wrong state to perform action"),
			"OpenNebula API error: [VirtualMachineAction] Wrong state to perform action",
		},
		{
			"long message truncated",
			errors.New(strings.Repeat("x", 150)),
			strings.Repeat("x", 100) + "...",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.err))
		})
	}
}

func TestStateLabels(t *testing.T) {
	assert.Equal(t, "ACTIVE", VMStateLabel(3))
	assert.Equal(t, "POWEROFF", VMStateLabel(8))
	assert.Equal(t, "UNKNOWN(99)", VMStateLabel(99))
	assert.Equal(t, "RUNNING", LCMStateLabel(3))
	assert.Equal(t, "LCM_UNKNOWN(99)", LCMStateLabel(99))
	assert.Equal(t, "MONITORED", HostStateLabel(2))
	assert.Equal(t, "READY", ImageStateLabel(1))
	assert.Equal(t, "DISABLED", DatastoreStateLabel(1))
}
