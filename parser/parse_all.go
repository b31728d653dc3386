package parser

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/jentic/jentic-openapi-tools-sub001/oaserrors"
)

// Source is one named document for ParseAll.
type Source struct {
	// Name becomes ParseResult.SourcePath. If empty, a name is derived from
	// the position of the source, such as "ParseAll-2.yaml".
	Name string
	// Data is the YAML or JSON text of the document.
	Data []byte
}

// ParseAll parses independent documents concurrently. Each document is
// built on its own worker with its own build context, and at most
// WithConcurrency documents are built at once.
//
// The returned slice has one entry per source, in input order. An entry is
// nil when its source failed; the returned error joins every failure, each
// prefixed with the source name, and works with errors.Is and errors.As.
//
// ctx is checked before each document starts. A document that has started
// building runs to completion.
//
// Input options (WithFilePath, WithReader, WithBytes and WithSourceName) are
// rejected; sources carry their own data and names.
func ParseAll(ctx context.Context, sources []Source, opts ...Option) ([]*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}
	if cfg.hasInput() || cfg.sourceName != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", &oaserrors.ConfigError{
			Option:  "input source",
			Message: "ParseAll takes its inputs as sources",
		})
	}

	workers := runtime.GOMAXPROCS(0)
	if cfg.concurrency != nil && *cfg.concurrency > 0 {
		workers = *cfg.concurrency
	}

	p := cfg.parser()
	p.log().Debug("parsing documents", "count", len(sources), "workers", workers)

	results := make([]*ParseResult, len(sources))
	wp := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for i, src := range sources {
		name := src.Name
		if name == "" {
			name = fmt.Sprintf("ParseAll-%d.%s", i, detectFormat(src.Data))
		}
		wp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("parser: %s: %w", name, err)
			}
			res, err := p.parseSource(src.Data, name)
			if err != nil {
				return fmt.Errorf("parser: %s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	return results, wp.Wait()
}

// parseSource parses in-memory data under name.
func (p *Parser) parseSource(data []byte, name string) (*ParseResult, error) {
	start := time.Now()
	if err := p.checkSize(int64(len(data))); err != nil {
		return nil, err
	}
	res, err := p.parseBytes(data, name)
	if err != nil {
		return nil, err
	}
	p.log().Debug("parsed document", "source", name, "elapsed", time.Since(start))
	return res, nil
}
