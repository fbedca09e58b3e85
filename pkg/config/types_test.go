package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pleaselabs/please/pkg/config"
)

// Tests are run as part of Config Suite from config_suite_test.go.

var _ = Describe("Language", func() {
	Describe("IsValid", func() {
		It("should accept ko", func() {
			Expect(config.LanguageKorean.IsValid()).To(BeTrue())
		})

		It("should accept en", func() {
			Expect(config.LanguageEnglish.IsValid()).To(BeTrue())
		})

		It("should reject unknown values", func() {
			Expect(config.Language("fr").IsValid()).To(BeFalse())
		})

		It("should reject the empty string", func() {
			Expect(config.Language("").IsValid()).To(BeFalse())
		})

		It("should be case-sensitive", func() {
			Expect(config.Language("KO").IsValid()).To(BeFalse())
			Expect(config.Language("En").IsValid()).To(BeFalse())
		})
	})

	Describe("ParseLanguage", func() {
		It("should parse 'ko' correctly", func() {
			language, err := config.ParseLanguage("ko")
			Expect(err).NotTo(HaveOccurred())
			Expect(language).To(Equal(config.LanguageKorean))
		})

		It("should parse 'en' correctly", func() {
			language, err := config.ParseLanguage("en")
			Expect(err).NotTo(HaveOccurred())
			Expect(language).To(Equal(config.LanguageEnglish))
		})

		It("should return error for invalid language", func() {
			_, err := config.ParseLanguage("de")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidLanguage)).To(BeTrue())
		})

		It("should name the rejected value in the error", func() {
			_, err := config.ParseLanguage("fr")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(`"fr"`))
		})
	})

	Describe("Languages", func() {
		It("should list every valid value", func() {
			Expect(config.Languages()).To(ConsistOf(
				config.LanguageKorean,
				config.LanguageEnglish,
			))
		})
	})

	Describe("DefaultLanguage", func() {
		It("should be Korean", func() {
			Expect(config.DefaultLanguage).To(Equal(config.LanguageKorean))
		})
	})
})

var _ = Describe("Severity", func() {
	Describe("IsValid", func() {
		It("should accept LOW, MEDIUM, and HIGH", func() {
			Expect(config.SeverityLow.IsValid()).To(BeTrue())
			Expect(config.SeverityMedium.IsValid()).To(BeTrue())
			Expect(config.SeverityHigh.IsValid()).To(BeTrue())
		})

		It("should be case-sensitive", func() {
			Expect(config.Severity("low").IsValid()).To(BeFalse())
			Expect(config.Severity("Medium").IsValid()).To(BeFalse())
		})

		It("should reject unknown values", func() {
			Expect(config.Severity("CRITICAL").IsValid()).To(BeFalse())
		})
	})

	Describe("ParseSeverity", func() {
		It("should parse 'HIGH' correctly", func() {
			severity, err := config.ParseSeverity("HIGH")
			Expect(err).NotTo(HaveOccurred())
			Expect(severity).To(Equal(config.SeverityHigh))
		})

		It("should return error for lowercase input", func() {
			_, err := config.ParseSeverity("high")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidSeverity)).To(BeTrue())
		})

		It("should return error for empty string", func() {
			_, err := config.ParseSeverity("")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidSeverity)).To(BeTrue())
		})
	})

	Describe("DefaultSeverity", func() {
		It("should be MEDIUM", func() {
			Expect(config.DefaultSeverity).To(Equal(config.SeverityMedium))
		})
	})
})

var _ = Describe("UnlimitedReviewComments", func() {
	It("should be -1", func() {
		Expect(config.UnlimitedReviewComments).To(Equal(-1))
	})
})
