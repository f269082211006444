package plan

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Load error codes, carried on LoadError for machine consumption.
const (
	ErrCodeNotFound = "PLAN_NOT_FOUND"
	ErrCodeSchema   = "PLAN_SCHEMA"
	ErrCodeDecode   = "PLAN_DECODE"
)

// LoadError is a plan-loading failure with a stable code.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile reads, schema-checks, and decodes a YAML plan file.
// The returned plan is normalized (see Normalize) but not validated;
// callers decide what to do with Validate results.
func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading plan file %s", path), Err: err}
	}
	return Parse(path, data)
}

// Parse schema-checks and decodes YAML plan bytes. The filename is used
// only for error positions.
func Parse(filename string, data []byte) (*Plan, error) {
	if err := checkSchema(filename, data); err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("decoding plan file %s", filename), Err: err}
	}

	p.Normalize()
	return &p, nil
}

// checkSchema validates the raw YAML against the embedded CUE schema.
//
// The YAML is extracted to a CUE value and unified with the schema; any
// conflict (unknown scalar kind, malformed date string, negative number)
// surfaces here with a file position, before Go decoding ever runs.
func checkSchema(filename string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema is embedded at build time; failing to compile it is a
		// programming error, not an input error.
		return &LoadError{Code: ErrCodeSchema, Message: "compiling embedded plan schema", Err: err}
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("parsing %s as YAML", filename), Err: err}
	}

	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("building CUE value for %s", filename), Err: err}
	}

	unified := schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &LoadError{
			Code:    ErrCodeSchema,
			Message: fmt.Sprintf("plan file %s does not match schema", filename),
			Err:     fmt.Errorf("%s", cueerrors.Details(err, nil)),
		}
	}
	return nil
}
