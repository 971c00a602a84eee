// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package source reads YAML, JSON and HCL documents from local files, stdin
// or S3 and wraps them as *slug.Array values.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/apex/log"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/gjson"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/staranto/slugger/internal/aws"
	"github.com/staranto/slugger/internal/factory"
	"github.com/staranto/slugger/internal/slug"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Stdin is the URI that reads from standard input.
const Stdin = "-"

// ParseFormat validates a --format flag value. "" means detect.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "":
		return "", nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "hcl", "tfvars":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("unsupported format: %s", s)
}

// DetectFormat derives the format from a file extension.
func DetectFormat(uri string) (Format, error) {
	ext := strings.TrimPrefix(path.Ext(uri), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %s, use --format", uri)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("cannot detect format of %s: %w", uri, err)
	}
	return f, nil
}

type options struct {
	name       string
	format     Format
	writable   *bool
	stdin      io.Reader
	awsOptions []aws.Option
}

// Option customizes Load.
type Option func(*options)

// WithName overrides the Array name derived from the URI.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithFormat skips extension based detection.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithWritable overrides factory.Writable.
func WithWritable(w bool) Option {
	return func(o *options) { o.writable = &w }
}

// WithStdin replaces os.Stdin for the "-" URI.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithAWSOptions is passed through when reading s3:// URIs.
func WithAWSOptions(opts ...aws.Option) Option {
	return func(o *options) { o.awsOptions = append(o.awsOptions, opts...) }
}

// Load reads, decodes and wraps the document at uri.
func Load(ctx context.Context, uri string, opts ...Option) (*slug.Array, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}

	format := o.format
	if format == "" {
		if uri == Stdin {
			format = FormatYAML
		} else {
			f, err := DetectFormat(uri)
			if err != nil {
				return nil, err
			}
			format = f
		}
	}

	b, err := read(ctx, uri, o)
	if err != nil {
		return nil, err
	}

	doc, err := Decode(b, format, uri)
	if err != nil {
		return nil, err
	}

	name := o.name
	if name == "" {
		name = NameFor(uri)
	}
	log.Debugf("loaded %s as %s (%d bytes, name %q)", uri, format, len(b), name)

	if o.writable != nil {
		return factory.New(name, doc, *o.writable)
	}
	return factory.New(name, doc)
}

// Read returns the raw bytes at uri.
func Read(ctx context.Context, uri string, opts ...Option) ([]byte, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}
	return read(ctx, uri, o)
}

func read(ctx context.Context, uri string, o options) ([]byte, error) {
	switch {
	case uri == Stdin:
		b, err := io.ReadAll(o.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	case strings.HasPrefix(uri, aws.S3Scheme):
		return aws.Fetch(ctx, uri, o.awsOptions...)
	default:
		b, err := os.ReadFile(uri)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", uri, err)
		}
		return b, nil
	}
}

// Decode turns b into a mapping the factory understands. filename is only
// used in diagnostics.
func Decode(b []byte, format Format, filename string) (any, error) {
	switch format {
	case FormatYAML:
		var data map[string]interface{}
		if err := yaml.Unmarshal(b, &data); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		return data, nil
	case FormatJSON:
		if !gjson.ValidBytes(b) {
			return nil, fmt.Errorf("failed to parse %s: invalid json", filename)
		}
		return gjson.ParseBytes(b), nil
	case FormatHCL:
		return decodeHCL(b, filename)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// decodeHCL evaluates every top-level attribute without variables or
// functions. Blocks are not supported.
func decodeHCL(b []byte, filename string) (cty.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(b, filename)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	vals := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return cty.NilVal, fmt.Errorf("failed to evaluate %s in %s: %s", name, filename, diags.Error())
		}
		vals[name] = v
	}
	return cty.ObjectVal(vals), nil
}

// NameFor derives an Array name from a URI: the base name without its
// extension, with separators and whitespace removed.
func NameFor(uri string) string {
	if uri == Stdin {
		return "stdin"
	}
	base := filepath.Base(uri)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := strings.Map(func(r rune) rune {
		if r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, base)
	if name == "" {
		return "doc"
	}
	return name
}
