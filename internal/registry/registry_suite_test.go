package registry

import (
	"context"
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRegistrySuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Registry Suite")
}

var _ = Describe("LoadEngine", func() {
	It("resolves a factory for a known slug", func() {
		f, err := LoadEngine(context.Background(), "ellipse")
		Expect(err).NotTo(HaveOccurred())
		Expect(f).NotTo(BeNil())
		Expect(f()).NotTo(BeNil())
	})

	It("returns the sentinel for an unknown slug", func() {
		_, err := LoadEngine(context.Background(), "warp-drive")
		Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
	})

	It("resolves each slug at most once", func() {
		a, err := LoadEngine(context.Background(), "beats")
		Expect(err).NotTo(HaveOccurred())
		b, err := LoadEngine(context.Background(), "beats")
		Expect(err).NotTo(HaveOccurred())
		Expect(a).NotTo(BeNil())
		Expect(b).NotTo(BeNil())
	})

	It("respects a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := LoadEngine(ctx, "pendulum")
		Expect(err).To(MatchError(context.Canceled))
	})
})
