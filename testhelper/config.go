package testhelper

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Control-D-Inc/vpnhost"
)

func SampleConfig(t *testing.T) *vpnhost.Config {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	vpnhost.InitConfig(v, "test_load_config")
	require.NoError(t, v.ReadConfig(strings.NewReader(sampleConfigContent)))
	var cfg vpnhost.Config
	require.NoError(t, v.Unmarshal(&cfg))
	return &cfg
}

var sampleConfigContent = `
[service]
log_level = "info"
log_path = "/path/to/log.log"

[hostname]
max_length = 63
fallback = "vpn-client"
`
