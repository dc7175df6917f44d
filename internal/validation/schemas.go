// Package validation checks JSON documents against the schemas bundled with
// the binary.
package validation

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var bundled embed.FS

const schemaSuffix = ".schema.json"

// SchemaTweets names the tweet collection schema
const SchemaTweets = "tweets"

// ErrUnknownSchema is returned for a schema name that is not bundled
var ErrUnknownSchema = errors.New("unknown schema")

// SchemaValidator checks a JSON document against a named schema
type SchemaValidator interface {
	ValidateBytes(data []byte, schema string) error
}

// Problem is one failed keyword at a JSON pointer into the document
type Problem struct {
	Pointer string
	Keyword string
}

// Error lists every leaf failure found in a document
type Error struct {
	Schema   string
	Problems []Problem
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Pointer + ": " + p.Keyword
	}
	return fmt.Sprintf("document does not match %s schema: %s", e.Schema, strings.Join(parts, "; "))
}

// compiled once per process; every bundled schema must compile
var compileBundled = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	files, err := fs.Glob(bundled, "schemas/*"+schemaSuffix)
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	out := make(map[string]*jsonschema.Schema, len(files))
	for _, file := range files {
		raw, err := bundled.ReadFile(file)
		if err != nil {
			return nil, err
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		if err := c.AddResource(file, doc); err != nil {
			return nil, fmt.Errorf("add %s: %w", file, err)
		}
		sch, err := c.Compile(file)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", file, err)
		}
		out[strings.TrimSuffix(path.Base(file), schemaSuffix)] = sch
	}
	return out, nil
})

type bundledValidator struct{}

// NewSchemaValidator returns a validator over the bundled schemas
func NewSchemaValidator() SchemaValidator {
	return bundledValidator{}
}

// ValidateBytes returns an *Error when data parses but breaks the schema
func (bundledValidator) ValidateBytes(data []byte, schema string) error {
	schemas, err := compileBundled()
	if err != nil {
		return err
	}
	sch, ok := schemas[schema]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSchema, schema)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse %s document: %w", schema, err)
	}

	err = sch.Validate(inst)
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	out := &Error{Schema: schema}
	leafProblems(verr, &out.Problems)
	return out
}

func leafProblems(verr *jsonschema.ValidationError, into *[]Problem) {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			leafProblems(cause, into)
		}
		return
	}
	p := Problem{Pointer: "/" + strings.Join(verr.InstanceLocation, "/")}
	if verr.ErrorKind != nil {
		p.Keyword = strings.Join(verr.ErrorKind.KeywordPath(), ".")
	}
	*into = append(*into, p)
}
