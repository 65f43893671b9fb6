// Package config provides configuration management for the node.
// Composition order is env (MN_*), then the yaml config file with
// MEMNODE_* overrides, then command-line flags.
package config

import (
	"time"

	"github.com/spf13/cobra"
)

type CompositorContract interface {
	LoadEnv() error
	LoadConf(path string) error
	LoadCMDLine(cmd *cobra.Command)
}

type Compositor struct {
	CMDLine *CMDLine
	Conf    *Conf
	Env     *Env
}

type Conf struct {
	Node            *Node        `mapstructure:"node"`
	HTTPServer      *HTTPServer  `mapstructure:"http_server"`
	TLS             *TLS         `mapstructure:"tls"`
	Log             *Log         `mapstructure:"log"`
	Diagnostics     *Diagnostics `mapstructure:"diagnostics"`
	Chain           *Chain       `mapstructure:"chain"`
	DisableWarnings *[]string    `mapstructure:"disable_warnings"`
}

type Node struct {
	Mode       *string `mapstructure:"mode"`
	Name       *string `mapstructure:"name"`
	ShowConfig *bool   `mapstructure:"show_config"`
}

type HTTPServer struct {
	Address     *string        `mapstructure:"address"`
	SessionTTL  *time.Duration `mapstructure:"session_ttl"`
	Timeout     *time.Duration `mapstructure:"timeout"`
	IdleTimeout *time.Duration `mapstructure:"idle_timeout"`
	MaxConns    *int           `mapstructure:"max_conns"`
}

type TLS struct {
	TlsEnabled *bool   `mapstructure:"enabled"`
	CertFile   *string `mapstructure:"cert_file"`
	KeyFile    *string `mapstructure:"key_file"`
}

type Log struct {
	JSON       *bool   `mapstructure:"json_format"`
	Level      *string `mapstructure:"level"`
	OutPath    *string `mapstructure:"output"`
	Directives *string `mapstructure:"directives"`
}

// Diagnostics holds the boot-time values of the runtime-mutable toggles.
// After startup they live in nodestate and change only over RPC.
type Diagnostics struct {
	ShowCalls       *string `mapstructure:"show_calls"`
	ShowStorageLogs *string `mapstructure:"show_storage_logs"`
	ShowVMDetails   *string `mapstructure:"show_vm_details"`
	ShowGasDetails  *string `mapstructure:"show_gas_details"`
	ResolveHashes   *bool   `mapstructure:"resolve_hashes"`
}

type Chain struct {
	StartTimestamp *uint64        `mapstructure:"start_timestamp"`
	BlockTime      *time.Duration `mapstructure:"block_time"`
}

// Env structure for environment variables
type Env struct {
	ConfigPath *string `mapstructure:"config_path"`
	NodePath   *string `mapstructure:"node_path"`
}

type CMDLine struct {
	ConfigPath string
	Debug      bool
}
