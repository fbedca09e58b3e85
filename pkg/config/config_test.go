package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pleaselabs/please/pkg/config"
)

// Tests are run as part of Config Suite from config_suite_test.go.

var _ = Describe("Config", func() {
	Describe("GetLanguage", func() {
		It("should return the configured language", func() {
			cfg := &config.Config{Language: config.LanguageEnglish}
			Expect(cfg.GetLanguage()).To(Equal(config.LanguageEnglish))
		})

		It("should return the default when unset", func() {
			cfg := &config.Config{}
			Expect(cfg.GetLanguage()).To(Equal(config.DefaultLanguage))
		})

		It("should return the default when invalid", func() {
			cfg := &config.Config{Language: "fr"}
			Expect(cfg.GetLanguage()).To(Equal(config.DefaultLanguage))
		})

		It("should return the default for nil Config", func() {
			var cfg *config.Config
			Expect(cfg.GetLanguage()).To(Equal(config.DefaultLanguage))
		})
	})

	Describe("GetCodeReview", func() {
		It("should create the section when absent", func() {
			cfg := &config.Config{}
			Expect(cfg.GetCodeReview()).NotTo(BeNil())
			Expect(cfg.CodeReview).NotTo(BeNil())
		})

		It("should return the existing section", func() {
			section := &config.CodeReviewConfig{}
			cfg := &config.Config{CodeReview: section}
			Expect(cfg.GetCodeReview()).To(BeIdenticalTo(section))
		})
	})

	Describe("GetIssueWorkflow", func() {
		It("should create the section when absent", func() {
			cfg := &config.Config{}
			Expect(cfg.GetIssueWorkflow()).NotTo(BeNil())
			Expect(cfg.IssueWorkflow).NotTo(BeNil())
		})
	})

	Describe("GetCodeWorkspace", func() {
		It("should create the section when absent", func() {
			cfg := &config.Config{}
			Expect(cfg.GetCodeWorkspace()).NotTo(BeNil())
			Expect(cfg.CodeWorkspace).NotTo(BeNil())
		})
	})

	Describe("GetIntegrations", func() {
		It("should create the section when absent", func() {
			cfg := &config.Config{}
			Expect(cfg.GetIntegrations()).NotTo(BeNil())
			Expect(cfg.Integrations).NotTo(BeNil())
		})
	})
})
