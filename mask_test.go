package prefixset

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetmaskFromNetIPMaskDispatch(t *testing.T) {
	v4, err := NetmaskFromNetIPMask(net.CIDRMask(24, 32))
	require.NoError(t, err)
	assert.True(t, v4.IsV4())
	assert.Equal(t, "255.255.255.0", v4.String())

	v6, err := NetmaskFromNetIPMask(net.CIDRMask(64, 128))
	require.NoError(t, err)
	assert.True(t, v6.IsV6())
}

func TestNetmaskFromNetIPMaskRejectsBadSize(t *testing.T) {
	_, err := NetmaskFromNetIPMask(net.IPMask{0xff, 0xff, 0xff})
	require.Error(t, err)
}
