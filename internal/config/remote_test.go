package config_test

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internalconfig "github.com/pleaselabs/please/internal/config"
	"github.com/pleaselabs/please/pkg/config"
	"github.com/pleaselabs/please/pkg/logger"
)

// Tests are run as part of Internal Config Suite from config_suite_test.go.

// fakeContentSource returns canned content or errors and records the path it
// was asked for.
type fakeContentSource struct {
	content   string
	err       error
	askedPath string
}

func (f *fakeContentSource) GetFileContent(
	_ context.Context,
	_, _, path, _ string,
) (string, error) {
	f.askedPath = path

	if f.err != nil {
		return "", f.err
	}

	return f.content, nil
}

var _ = Describe("RemoteLoader", func() {
	var (
		loader *internalconfig.RemoteLoader
		logBuf *bytes.Buffer
		ctx    context.Context
	)

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		loader = internalconfig.NewRemoteLoader(logger.NewWithWriter(logBuf, false))
		ctx = context.Background()
	})

	It("should ask the source for the conventional config path", func() {
		source := &fakeContentSource{content: "language: en\n"}
		loader.Load(ctx, source, "pleaselabs", "demo", "main")
		Expect(source.askedPath).To(Equal(config.ConfigRelPath))
	})

	It("should return the validated config on success", func() {
		source := &fakeContentSource{
			content: "language: en\nissue_workflow:\n  disable: true\n",
		}

		cfg := loader.Load(ctx, source, "pleaselabs", "demo", "main")
		Expect(cfg.GetLanguage()).To(Equal(config.LanguageEnglish))
		Expect(cfg.IssueWorkflow.IsDisabled()).To(BeTrue())
		Expect(logBuf.String()).To(BeEmpty())
	})

	It("should return defaults silently when the file does not exist", func() {
		source := &fakeContentSource{err: internalconfig.ErrConfigNotFound}

		cfg := loader.Load(ctx, source, "pleaselabs", "demo", "")
		Expect(cfg).To(Equal(internalconfig.DefaultConfig()))
		Expect(logBuf.String()).To(BeEmpty())
	})

	It("should return defaults and log when the fetch fails", func() {
		source := &fakeContentSource{err: errors.New("rate limited")}

		cfg := loader.Load(ctx, source, "pleaselabs", "demo", "main")
		Expect(cfg).To(Equal(internalconfig.DefaultConfig()))
		Expect(logBuf.String()).To(ContainSubstring("failed to fetch remote config"))
		Expect(logBuf.String()).To(ContainSubstring("rate limited"))
	})

	It("should return defaults and log when the content is not YAML", func() {
		source := &fakeContentSource{content: "language: [unclosed\n"}

		cfg := loader.Load(ctx, source, "pleaselabs", "demo", "main")
		Expect(cfg).To(Equal(internalconfig.DefaultConfig()))
		Expect(logBuf.String()).To(ContainSubstring("failed to parse remote config"))
	})

	It("should return defaults and log when the content fails validation", func() {
		source := &fakeContentSource{content: "language: fr\n"}

		cfg := loader.Load(ctx, source, "pleaselabs", "demo", "main")
		Expect(cfg).To(Equal(internalconfig.DefaultConfig()))
		Expect(logBuf.String()).To(ContainSubstring("remote config failed validation"))
	})

	It("should tolerate a nil logger", func() {
		quiet := internalconfig.NewRemoteLoader(nil)
		source := &fakeContentSource{err: errors.New("boom")}

		cfg := quiet.Load(ctx, source, "pleaselabs", "demo", "main")
		Expect(cfg).To(Equal(internalconfig.DefaultConfig()))
	})
})
