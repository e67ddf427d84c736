package i18n

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"sync"
)

//go:embed translations/*.yaml
var catalogFS embed.FS

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
)

// Default returns the translator for the embedded message catalog.
// Panics if the embedded catalog is malformed, which is a build defect.
func Default() *Translator {
	defaultOnce.Do(func() {
		tr, err := loadCatalog(context.Background(), catalogFS)
		if err != nil {
			panic(fmt.Sprintf("i18n: embedded catalog: %v", err))
		}
		defaultTranslator = tr
	})
	return defaultTranslator
}

func loadCatalog(ctx context.Context, fsys fs.FS) (*Translator, error) {
	files, err := fs.Glob(fsys, "translations/*.yaml")
	if err != nil {
		return nil, err
	}

	all := make(map[string]map[string]any)
	for _, name := range files {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		parsed, err := ParseYAML(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		maps.Copy(all, parsed)
	}

	return New(all)
}
