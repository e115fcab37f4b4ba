package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Overlay pages let operators ship extra articles (release notes, regional
// pages) without a rebuild. Files live in a flat directory, one page per
// .yaml file, and are merged after the built-in set at startup.

type pageFile struct {
	Slug      string        `yaml:"slug"`
	Title     string        `yaml:"title"`
	Badge     string        `yaml:"badge"`
	Summary   string        `yaml:"summary"`
	UpdatedAt string        `yaml:"updated_at"`
	SEO       pageFileSEO   `yaml:"seo"`
	Sections  []sectionFile `yaml:"sections"`
}

type pageFileSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

type sectionFile struct {
	Heading string      `yaml:"heading"`
	Blocks  []blockFile `yaml:"blocks"`
}

// blockFile is the tagged on-disk form of a Block: exactly one of the
// variant keys must be present.
type blockFile struct {
	Paragraph string `yaml:"paragraph"`
	Code      *struct {
		Lang   string `yaml:"lang"`
		Source string `yaml:"source"`
	} `yaml:"code"`
	Table *struct {
		Headers []string   `yaml:"headers"`
		Rows    [][]string `yaml:"rows"`
	} `yaml:"table"`
	Callout *struct {
		Kind string `yaml:"kind"`
		Text string `yaml:"text"`
	} `yaml:"callout"`
}

// LoadDir reads every .yaml/.yml page file under dir, sorted by filename for
// stable ordering. A missing directory is not an error; a malformed file is.
func LoadDir(dir string) ([]Page, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("docs: read content dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	pages := make([]Page, 0, len(names))
	for _, name := range names {
		p, err := loadPageFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func loadPageFile(path string) (Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("docs: read %s: %w", path, err)
	}
	var pf pageFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return Page{}, fmt.Errorf("docs: parse %s: %w", path, err)
	}
	return pf.toPage(path)
}

func (pf pageFile) toPage(path string) (Page, error) {
	slug := CleanSlug(pf.Slug)
	if slug == "" {
		// derive from filename: "2026-q3-changelog.yaml" -> slug
		base := filepath.Base(path)
		slug = CleanSlug(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if slug == "" {
		return Page{}, fmt.Errorf("docs: %s: missing slug", path)
	}
	p := Page{
		Slug:    slug,
		Title:   strings.TrimSpace(pf.Title),
		Badge:   strings.TrimSpace(pf.Badge),
		Summary: strings.TrimSpace(pf.Summary),
		SEO: PageSEO{
			Title:       strings.TrimSpace(pf.SEO.Title),
			Description: strings.TrimSpace(pf.SEO.Description),
			OGImage:     strings.TrimSpace(pf.SEO.OGImage),
		},
	}
	if p.Title == "" {
		p.Title = PrettifySlug(slug)
	}
	p.UpdatedAt = parsePageDate(pf.UpdatedAt)
	if p.UpdatedAt.IsZero() {
		if info, err := os.Stat(path); err == nil {
			p.UpdatedAt = info.ModTime()
		}
	}
	for si, sf := range pf.Sections {
		sec := Section{Heading: strings.TrimSpace(sf.Heading)}
		for bi, bf := range sf.Blocks {
			b, err := bf.toBlock()
			if err != nil {
				return Page{}, fmt.Errorf("docs: %s: section %d block %d: %w", path, si+1, bi+1, err)
			}
			sec.Blocks = append(sec.Blocks, b)
		}
		p.Sections = append(p.Sections, sec)
	}
	if len(p.Sections) == 0 {
		return Page{}, fmt.Errorf("docs: %s: page has no sections", path)
	}
	return p, nil
}

func (bf blockFile) toBlock() (Block, error) {
	set := 0
	if bf.Paragraph != "" {
		set++
	}
	if bf.Code != nil {
		set++
	}
	if bf.Table != nil {
		set++
	}
	if bf.Callout != nil {
		set++
	}
	if set != 1 {
		return Block{}, fmt.Errorf("want exactly one of paragraph/code/table/callout, got %d", set)
	}
	switch {
	case bf.Paragraph != "":
		return Paragraph(bf.Paragraph), nil
	case bf.Code != nil:
		if bf.Code.Source == "" {
			return Block{}, errors.New("code block has empty source")
		}
		return Code(bf.Code.Lang, bf.Code.Source), nil
	case bf.Table != nil:
		if len(bf.Table.Headers) == 0 {
			return Block{}, errors.New("table block has no headers")
		}
		for i, row := range bf.Table.Rows {
			if len(row) != len(bf.Table.Headers) {
				return Block{}, fmt.Errorf("table row %d has %d cells, want %d", i+1, len(row), len(bf.Table.Headers))
			}
		}
		return Table(bf.Table.Headers, bf.Table.Rows...), nil
	default:
		switch kind := CalloutVariant(strings.ToLower(strings.TrimSpace(bf.Callout.Kind))); kind {
		case CalloutInfo, CalloutWarning:
			return Callout(kind, bf.Callout.Text), nil
		case "":
			return Callout(CalloutInfo, bf.Callout.Text), nil
		default:
			return Block{}, fmt.Errorf("unknown callout kind %q", bf.Callout.Kind)
		}
	}
}

func parsePageDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
