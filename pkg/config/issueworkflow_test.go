package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pleaselabs/please/pkg/config"
)

// Tests are run as part of Config Suite from config_suite_test.go.

var _ = Describe("IssueWorkflowConfig", func() {
	boolPtr := func(v bool) *bool { return &v }

	Describe("IsDisabled", func() {
		It("should return false when Disable is nil", func() {
			cfg := &config.IssueWorkflowConfig{}
			Expect(cfg.IsDisabled()).To(BeFalse())
		})

		It("should return true when Disable is true", func() {
			cfg := &config.IssueWorkflowConfig{Disable: boolPtr(true)}
			Expect(cfg.IsDisabled()).To(BeTrue())
		})

		It("should return false for nil IssueWorkflowConfig", func() {
			var cfg *config.IssueWorkflowConfig
			Expect(cfg.IsDisabled()).To(BeFalse())
		})
	})

	Describe("TriageConfig", func() {
		It("should default auto, manual, and update_issue_type to true", func() {
			cfg := &config.TriageConfig{}
			Expect(cfg.IsAutoEnabled()).To(BeTrue())
			Expect(cfg.IsManualEnabled()).To(BeTrue())
			Expect(cfg.ShouldUpdateIssueType()).To(BeTrue())
		})

		It("should honor explicit false values", func() {
			cfg := &config.TriageConfig{
				Auto:            boolPtr(false),
				Manual:          boolPtr(false),
				UpdateIssueType: boolPtr(false),
			}
			Expect(cfg.IsAutoEnabled()).To(BeFalse())
			Expect(cfg.IsManualEnabled()).To(BeFalse())
			Expect(cfg.ShouldUpdateIssueType()).To(BeFalse())
		})

		It("should default everything to true for nil TriageConfig", func() {
			var cfg *config.TriageConfig
			Expect(cfg.IsAutoEnabled()).To(BeTrue())
			Expect(cfg.IsManualEnabled()).To(BeTrue())
			Expect(cfg.ShouldUpdateIssueType()).To(BeTrue())
		})
	})

	Describe("InvestigateConfig", func() {
		It("should default enabled and org_members_only to true", func() {
			cfg := &config.InvestigateConfig{}
			Expect(cfg.IsEnabled()).To(BeTrue())
			Expect(cfg.IsOrgMembersOnly()).To(BeTrue())
		})

		It("should default auto_on_bug_label to false", func() {
			cfg := &config.InvestigateConfig{}
			Expect(cfg.IsAutoOnBugLabel()).To(BeFalse())
		})
	})

	Describe("FixConfig", func() {
		It("should default enabled, auto_create_pr, and auto_run_tests to true", func() {
			cfg := &config.FixConfig{}
			Expect(cfg.IsEnabled()).To(BeTrue())
			Expect(cfg.ShouldAutoCreatePR()).To(BeTrue())
			Expect(cfg.ShouldAutoRunTests()).To(BeTrue())
		})

		It("should default require_investigation to false", func() {
			cfg := &config.FixConfig{}
			Expect(cfg.RequiresInvestigation()).To(BeFalse())
		})

		It("should honor explicit require_investigation", func() {
			cfg := &config.FixConfig{RequireInvestigation: boolPtr(true)}
			Expect(cfg.RequiresInvestigation()).To(BeTrue())
		})
	})

	Describe("IssueOpenedConfig", func() {
		It("should default post_dev_help to true", func() {
			cfg := &config.IssueOpenedConfig{}
			Expect(cfg.ShouldPostDevHelp()).To(BeTrue())
		})

		It("should honor an explicit false", func() {
			cfg := &config.IssueOpenedConfig{PostDevHelp: boolPtr(false)}
			Expect(cfg.ShouldPostDevHelp()).To(BeFalse())
		})
	})
})

var _ = Describe("Config workflow decisions", func() {
	boolPtr := func(v bool) *bool { return &v }

	disabledWorkflow := func() *config.Config {
		disable := true

		return &config.Config{
			IssueWorkflow: &config.IssueWorkflowConfig{Disable: &disable},
		}
	}

	Describe("ShouldPostDevHelpOnIssueOpened", func() {
		It("should return true for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.ShouldPostDevHelpOnIssueOpened()).To(BeTrue())
		})

		It("should return true for a nil config", func() {
			var cfg *config.Config
			Expect(cfg.ShouldPostDevHelpOnIssueOpened()).To(BeTrue())
		})

		It("should return false when the workflow is disabled", func() {
			Expect(disabledWorkflow().ShouldPostDevHelpOnIssueOpened()).To(BeFalse())
		})
	})

	Describe("IsAutoTriageEnabled", func() {
		It("should return true for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.IsAutoTriageEnabled()).To(BeTrue())
		})

		It("should return false when triage.auto is false", func() {
			cfg := &config.Config{
				IssueWorkflow: &config.IssueWorkflowConfig{
					Triage: &config.TriageConfig{Auto: boolPtr(false)},
				},
			}
			Expect(cfg.IsAutoTriageEnabled()).To(BeFalse())
		})

		It("should let a disabled workflow win over triage.auto=true", func() {
			cfg := &config.Config{
				IssueWorkflow: &config.IssueWorkflowConfig{
					Disable: boolPtr(true),
					Triage:  &config.TriageConfig{Auto: boolPtr(true)},
				},
			}
			Expect(cfg.IsAutoTriageEnabled()).To(BeFalse())
		})
	})

	Describe("IsManualTriageEnabled", func() {
		It("should return true for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.IsManualTriageEnabled()).To(BeTrue())
		})

		It("should return false when the workflow is disabled", func() {
			Expect(disabledWorkflow().IsManualTriageEnabled()).To(BeFalse())
		})
	})

	Describe("ShouldUpdateIssueTypeOnTriage", func() {
		It("should return true for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.ShouldUpdateIssueTypeOnTriage()).To(BeTrue())
		})

		It("should return false when the workflow is disabled", func() {
			Expect(disabledWorkflow().ShouldUpdateIssueTypeOnTriage()).To(BeFalse())
		})
	})

	Describe("IsInvestigateEnabled", func() {
		It("should return true for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.IsInvestigateEnabled()).To(BeTrue())
		})

		It("should return false when investigate is disabled", func() {
			cfg := &config.Config{
				IssueWorkflow: &config.IssueWorkflowConfig{
					Investigate: &config.InvestigateConfig{Enabled: boolPtr(false)},
				},
			}
			Expect(cfg.IsInvestigateEnabled()).To(BeFalse())
		})

		It("should return false when the workflow is disabled", func() {
			Expect(disabledWorkflow().IsInvestigateEnabled()).To(BeFalse())
		})
	})

	Describe("ShouldAutoInvestigateOnBugLabel", func() {
		It("should return false for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.ShouldAutoInvestigateOnBugLabel()).To(BeFalse())
		})

		It("should return true when auto_on_bug_label is set", func() {
			cfg := &config.Config{
				IssueWorkflow: &config.IssueWorkflowConfig{
					Investigate: &config.InvestigateConfig{
						AutoOnBugLabel: boolPtr(true),
					},
				},
			}
			Expect(cfg.ShouldAutoInvestigateOnBugLabel()).To(BeTrue())
		})

		It("should require investigate to be enabled", func() {
			cfg := &config.Config{
				IssueWorkflow: &config.IssueWorkflowConfig{
					Investigate: &config.InvestigateConfig{
						Enabled:        boolPtr(false),
						AutoOnBugLabel: boolPtr(true),
					},
				},
			}
			Expect(cfg.ShouldAutoInvestigateOnBugLabel()).To(BeFalse())
		})
	})

	Describe("IsFixEnabled", func() {
		It("should return true for an empty config", func() {
			cfg := &config.Config{}
			Expect(cfg.IsFixEnabled()).To(BeTrue())
		})

		It("should return false when fix is disabled", func() {
			cfg := &config.Config{
				IssueWorkflow: &config.IssueWorkflowConfig{
					Fix: &config.FixConfig{Enabled: boolPtr(false)},
				},
			}
			Expect(cfg.IsFixEnabled()).To(BeFalse())
		})

		It("should return false when the workflow is disabled", func() {
			Expect(disabledWorkflow().IsFixEnabled()).To(BeFalse())
		})
	})
})
