package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
	"golang.org/x/sync/errgroup"

	"vselect/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned for file extensions with no loader
	ErrUnsupportedFormat = errors.New("unsupported catalogue format")
	// ErrMissingValue is returned when an option has an empty value
	ErrMissingValue = errors.New("option has no value")
)

// maxConcurrentLoads bounds LoadAll's parallel readers
const maxConcurrentLoads = 4

// Load reads one catalogue, picking the decoder from the file extension
func Load(path string) (*domain.Catalogue, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand catalogue path: %w", err)
	}

	f, err := os.Open(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer f.Close()

	var cat *domain.Catalogue
	switch strings.ToLower(filepath.Ext(expanded)) {
	case ".toml":
		cat, err = decodeTOML(f)
	case ".yaml", ".yml":
		cat, err = decodeYAML(f)
	case ".tsv", ".txt":
		cat, err = decodeTSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalogue %s: %w", path, err)
	}
	if err := validate(cat); err != nil {
		return nil, fmt.Errorf("invalid catalogue %s: %w", path, err)
	}

	log.Printf("catalog: loaded %d options from %s", len(cat.Options), path)
	return cat, nil
}

// LoadAll loads paths concurrently and concatenates them in argument order.
// The first occurrence of a duplicate value wins.
func LoadAll(ctx context.Context, paths []string) (*domain.Catalogue, error) {
	parts := make([]*domain.Catalogue, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cat, err := Load(path)
			if err != nil {
				return err
			}
			parts[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(parts...), nil
}

// Merge concatenates catalogues, dropping options whose value was already seen
func Merge(parts ...*domain.Catalogue) *domain.Catalogue {
	merged := &domain.Catalogue{}
	seen := make(map[string]struct{})
	for _, part := range parts {
		if part == nil {
			continue
		}
		for _, o := range part.Options {
			if _, dup := seen[o.Value]; dup {
				continue
			}
			seen[o.Value] = struct{}{}
			merged.Options = append(merged.Options, o)
		}
	}
	return merged
}

// Generate builds n synthetic options spread over contiguous groups.
// groups <= 0 yields an ungrouped catalogue.
func Generate(n, groups int) *domain.Catalogue {
	n = max(n, 0)
	cat := &domain.Catalogue{Options: make([]domain.Option, 0, n)}
	for i := range n {
		o := domain.Option{
			Value: fmt.Sprintf("option-%d", i),
			Label: fmt.Sprintf("Option %d", i),
		}
		if groups > 0 {
			o.Group = fmt.Sprintf("Group %d", i*groups/n+1)
		}
		cat.Options = append(cat.Options, o)
	}
	return cat
}

func decodeTOML(r io.Reader) (*domain.Catalogue, error) {
	var cat domain.Catalogue
	if err := toml.NewDecoder(r).Decode(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func decodeYAML(r io.Reader) (*domain.Catalogue, error) {
	var cat domain.Catalogue
	if err := yaml.NewDecoder(r).Decode(&cat); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &cat, nil
}

// decodeTSV reads value, label, group and disabled columns.
// Trailing columns may be omitted; lines starting with # are comments.
func decodeTSV(r io.Reader) (*domain.Catalogue, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var cat domain.Catalogue
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		o := domain.Option{Value: strings.TrimSpace(rec[0])}
		if len(rec) > 1 {
			o.Label = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			o.Group = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 && strings.TrimSpace(rec[3]) != "" {
			line, _ := cr.FieldPos(3)
			disabled, err := strconv.ParseBool(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid disabled flag %q", line, rec[3])
			}
			o.Disabled = disabled
		}
		cat.Options = append(cat.Options, o)
	}
	return &cat, nil
}

func validate(cat *domain.Catalogue) error {
	for i, o := range cat.Options {
		if strings.TrimSpace(o.Value) == "" {
			return fmt.Errorf("option %d: %w", i+1, ErrMissingValue)
		}
		if o.Size < 0 {
			return fmt.Errorf("option %q: negative size %d", o.Value, o.Size)
		}
	}
	return nil
}
