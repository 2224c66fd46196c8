package registry

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
)

func TestCatalogComplete(t *testing.T) {
	g := NewWithT(t)

	slugs := Slugs()
	g.Expect(slugs).To(HaveLen(20))
	g.Expect(slugs).To(ContainElements("ellipse", "snells-law", "half-life-period"))

	for _, slug := range slugs {
		cfg, ok := Get(slug)
		g.Expect(ok).To(BeTrue(), "slug %s", slug)
		g.Expect(cfg.Title).NotTo(BeEmpty(), "slug %s", slug)
		g.Expect(cfg.Category).NotTo(BeEmpty(), "slug %s", slug)
		g.Expect(cfg.Description).NotTo(BeEmpty(), "slug %s", slug)
	}
}

func TestSchemaRangesSane(t *testing.T) {
	g := NewWithT(t)

	for _, slug := range Slugs() {
		cfg, _ := Get(slug)
		for _, p := range cfg.Schema {
			g.Expect(p.Min).To(BeNumerically("<=", p.Default),
				"%s/%s min above default", slug, p.Key)
			g.Expect(p.Default).To(BeNumerically("<=", p.Max),
				"%s/%s default above max", slug, p.Key)
			g.Expect(p.Step).To(BeNumerically(">", 0),
				"%s/%s non-positive step", slug, p.Key)
			g.Expect(p.Label).NotTo(BeEmpty(), "%s/%s", slug, p.Key)
		}
	}
}

func TestGetUnknownSlug(t *testing.T) {
	g := NewWithT(t)

	cfg, ok := Get("warp-drive")
	g.Expect(ok).To(BeFalse())
	g.Expect(cfg).To(BeNil())
}

func TestCategoriesSortedAndDistinct(t *testing.T) {
	g := NewWithT(t)

	cats := Categories()
	g.Expect(cats).To(ContainElements("Mechanics", "Waves", "Optics"))
	for i := 1; i < len(cats); i++ {
		g.Expect(cats[i-1] < cats[i]).To(BeTrue(), "categories out of order")
	}
	for _, c := range cats {
		g.Expect(ByCategory(c)).NotTo(BeEmpty(), "category %s", c)
	}
}

func TestFactoryInstancesIndependent(t *testing.T) {
	g := NewWithT(t)

	f, err := LoadEngine(context.Background(), "pendulum")
	g.Expect(err).NotTo(HaveOccurred())

	a, b := f(), f()
	g.Expect(a).NotTo(BeIdenticalTo(b))
}
