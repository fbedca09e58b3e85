package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pleaselabs/please/pkg/config"
)

// Tests are run as part of Config Suite from config_suite_test.go.

var _ = Describe("CodeWorkspaceConfig", func() {
	Describe("IsEnabled", func() {
		It("should return true when Enabled is nil", func() {
			cfg := &config.CodeWorkspaceConfig{}
			Expect(cfg.IsEnabled()).To(BeTrue())
		})

		It("should return false when Enabled is false", func() {
			enabled := false
			cfg := &config.CodeWorkspaceConfig{Enabled: &enabled}
			Expect(cfg.IsEnabled()).To(BeFalse())
		})

		It("should return true for nil CodeWorkspaceConfig", func() {
			var cfg *config.CodeWorkspaceConfig
			Expect(cfg.IsEnabled()).To(BeTrue())
		})
	})
})

var _ = Describe("Config.IsCodeWorkspaceEnabled", func() {
	It("should return true for an empty config", func() {
		cfg := &config.Config{}
		Expect(cfg.IsCodeWorkspaceEnabled()).To(BeTrue())
	})

	It("should return true for a nil config", func() {
		var cfg *config.Config
		Expect(cfg.IsCodeWorkspaceEnabled()).To(BeTrue())
	})

	It("should return false when explicitly disabled", func() {
		enabled := false
		cfg := &config.Config{
			CodeWorkspace: &config.CodeWorkspaceConfig{Enabled: &enabled},
		}
		Expect(cfg.IsCodeWorkspaceEnabled()).To(BeFalse())
	})
})
