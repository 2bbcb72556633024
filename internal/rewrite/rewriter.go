// Package rewrite drives the whole transformation for one source file:
// locate when blocks, parse and expand each one, splice the expansions over
// their invocations, and format the result.
package rewrite

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"

	"whengen/internal/analyze"
	"whengen/internal/clause"
	"whengen/internal/config"
	"whengen/internal/gen"
)

// Result is the outcome of rewriting a single source buffer.
type Result struct {
	// Content is the formatted output. On a formatting error it holds the
	// unformatted splice result, for debugging.
	Content []byte
	// Sites is the number of when blocks expanded, across all passes.
	Sites int
	// Passes is the number of scan/splice passes taken. Nested blocks need
	// one pass per nesting level.
	Passes int
}

// Rewrite expands every when block in src. outName is the name the output
// will be written under; the formatter uses it to resolve imports.
//
// Each pass scans the whole buffer, expands all sites found, and splices the
// results in reverse source order so earlier offsets stay valid. Expansions
// are re-scanned on the next pass, which is how nested blocks are handled.
func Rewrite(filename, outName string, src []byte, cfg config.Config) (*Result, error) {
	res := &Result{}

	for {
		if res.Passes == cfg.MaxPasses {
			return nil, fmt.Errorf("%s: when expansion did not converge after %d passes", filename, cfg.MaxPasses)
		}

		toks, err := clause.Scan(filename, src)
		if err != nil {
			return nil, err
		}

		sites, err := analyze.FindSites(cfg.Keyword, toks, src)
		if err != nil {
			return nil, err
		}

		if len(sites) == 0 {
			break
		}

		res.Passes++

		for i := len(sites) - 1; i >= 0; i-- {
			expansion, err := expandSite(sites[i], src)
			if err != nil {
				return nil, err
			}

			src = splice(src, sites[i].Start, sites[i].End, expansion)
		}

		res.Sites += len(sites)

		logrus.WithFields(logrus.Fields{
			"file":  filename,
			"pass":  res.Passes,
			"sites": len(sites),
		}).Debug("expanded when blocks")
	}

	if res.Sites == 0 {
		logrus.WithField("file", filename).Debug("no when blocks found")
	}

	if cfg.Header != "" {
		src = append([]byte("// "+cfg.Header+"\n\n"), src...)
	}

	formatted, err := imports.Process(outName, src, nil)
	if err != nil {
		res.Content = src

		return res, fmt.Errorf("formatting %s: %w (unformatted code returned)", outName, err)
	}

	res.Content = formatted

	return res, nil
}

// expandSite parses and expands a single invocation.
func expandSite(site analyze.Site, src []byte) (string, error) {
	list, err := clause.Parse(site.Inner, src, site.OpenPos)
	if err != nil {
		return "", err
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Trace(spew.Sdump(list))
	}

	mode := gen.ModeStatement
	if site.Expression() {
		mode = gen.ModeExpression
	}

	return gen.Expand(gen.Request{
		List:       list,
		Mode:       mode,
		ResultType: site.TypeArg,
		Pos:        site.Keyword.Pos,
	})
}

// splice replaces src[start:end] with text.
func splice(src []byte, start, end int, text string) []byte {
	out := make([]byte, 0, len(src)-(end-start)+len(text))
	out = append(out, src[:start]...)
	out = append(out, text...)
	out = append(out, src[end:]...)

	return out
}

// FileResult is the outcome of processing one input file.
type FileResult struct {
	InputPath  string
	OutputPath string
	Content    []byte
	Sites      int
}

// ProcessFile rewrites one input file and returns the result without writing
// it. On a formatting failure an unformatted sidecar dump is written next to
// the intended output to aid debugging.
func ProcessFile(path string, cfg config.Config) (*FileResult, error) {
	return processFile(path, cfg, true)
}

// CheckFile rewrites one input file, discarding the output and returning the
// number of when blocks it would have expanded. Unlike ProcessFile it touches
// nothing on disk, not even debug dumps.
func CheckFile(path string, cfg config.Config) (int, error) {
	res, err := processFile(path, cfg, false)
	if err != nil {
		return 0, err
	}

	return res.Sites, nil
}

func processFile(path string, cfg config.Config, debugDump bool) (*FileResult, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	outPath := cfg.OutputName(path)

	res, err := Rewrite(path, outPath, src, cfg)
	if err != nil {
		if debugDump && res != nil && len(res.Content) > 0 {
			_ = writeDebugUnformatted(outPath, res.Content)
		}

		return nil, err
	}

	return &FileResult{
		InputPath:  path,
		OutputPath: outPath,
		Content:    res.Content,
		Sites:      res.Sites,
	}, nil
}
