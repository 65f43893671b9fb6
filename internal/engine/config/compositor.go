package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewCompositor() *Compositor {
	return &Compositor{
		CMDLine: &CMDLine{},
	}
}

func (c *Compositor) LoadEnv() error {
	v := viper.New()

	// defaults
	v.SetDefault("config_path", "./config.yaml")
	v.SetDefault("node_path", "./")

	// MN_*
	v.SetEnvPrefix("MN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return fmt.Errorf("error unmarshaling env: %w", err)
	}

	c.Env = &env
	return nil
}

func (c *Compositor) LoadConf(path string) error {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// defaults
	v.SetDefault("node.mode", "dev")
	v.SetDefault("node.name", "memnode")
	v.SetDefault("node.show_config", false)
	v.SetDefault("http_server.address", "127.0.0.1:8011")
	v.SetDefault("http_server.session_ttl", "30s")
	v.SetDefault("http_server.timeout", "5s")
	v.SetDefault("http_server.idle_timeout", "60s")
	v.SetDefault("http_server.max_conns", 100)
	v.SetDefault("tls.enabled", false)
	v.SetDefault("tls.cert_file", "./cert/server.crt")
	v.SetDefault("tls.key_file", "./cert/server.key")
	v.SetDefault("log.json_format", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.directives", "")
	v.SetDefault("diagnostics.show_calls", "none")
	v.SetDefault("diagnostics.show_storage_logs", "none")
	v.SetDefault("diagnostics.show_vm_details", "none")
	v.SetDefault("diagnostics.show_gas_details", "none")
	v.SetDefault("diagnostics.resolve_hashes", false)
	v.SetDefault("chain.start_timestamp", 1)
	v.SetDefault("chain.block_time", "1s")
	v.SetDefault("disable_warnings", []string{})

	// ENV overrides
	v.SetEnvPrefix("MEMNODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config: %w", err)
	}

	var cfg Conf
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	c.Conf = &cfg
	return nil
}

// LoadCMDLine registers the persistent flags the node understands and binds
// them into the compositor. Must run before cobra parses the command line.
func (c *Compositor) LoadCMDLine(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&c.CMDLine.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&c.CMDLine.Debug, "debug", "d", false, "Set debug mode")
}
