// Package failingconfig demonstrates the failure mode: wifi_ssid is
// required, and the cfg.toml in this module does not provide it. Running
// go generate here exits non-zero with:
//
//	Field `wifi_ssid`: required but no value was provided in the config file.
//
// No generated file is written until the config supplies the value.
package failingconfig

//go:generate go tool toml-cfg

//tomlcfg:config
type Config struct {
	WifiSSID string `toml:"wifi_ssid" required:"true"`
	// Empty means the network is open.
	WifiPasskey string `toml:"wifi_passkey" default:""`
}
