package builder

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/palette-themify/themify-dist/internal/platform"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/matrix.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// matrixFile is the on-disk shape of a build matrix override.
type matrixFile struct {
	Targets []struct {
		Platform string `yaml:"platform"`
		Arch     string `yaml:"arch"`
		Triple   string `yaml:"triple"`
	} `yaml:"targets"`
}

// ValidationIssue is a single schema violation in a matrix file.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/targets/2/arch"
	Message string
	Keyword string
}

// MatrixError reports every issue found in an invalid matrix file.
type MatrixError struct {
	File   string
	Issues []ValidationIssue
}

func (e *MatrixError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid build matrix %s:", e.File)
	for _, issue := range e.Issues {
		if issue.Path != "" {
			fmt.Fprintf(&b, "\n  %s: %s", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(&b, "\n  %s", issue.Message)
		}
	}
	return b.String()
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("matrix.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("matrix.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// LoadMatrix reads a YAML matrix override, validates it against the embedded
// schema and returns its entries in file order. Two entries for the same
// target are rejected because they would write the same artifact.
func LoadMatrix(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading build matrix: %w", err)
	}
	return ParseMatrix(path, data)
}

// ParseMatrix is LoadMatrix for in-memory data; name is used in errors.
func ParseMatrix(name string, data []byte) ([]Entry, error) {
	if err := validateMatrix(name, data); err != nil {
		return nil, err
	}

	var mf matrixFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing build matrix %s: %w", name, err)
	}

	entries := make([]Entry, 0, len(mf.Targets))
	seen := make(map[platform.Target]int, len(mf.Targets))
	for i, t := range mf.Targets {
		target := platform.Target{Platform: t.Platform, Arch: t.Arch}
		if prev, dup := seen[target]; dup {
			return nil, &MatrixError{File: name, Issues: []ValidationIssue{{
				Path:    fmt.Sprintf("/targets/%d", i),
				Message: fmt.Sprintf("duplicate target %s (first defined at /targets/%d)", target, prev),
				Keyword: "unique",
			}}}
		}
		seen[target] = i
		entries = append(entries, Entry{Target: target, Triple: t.Triple})
	}
	return entries, nil
}

func validateMatrix(name string, data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing build matrix %s: %w", name, err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("converting build matrix to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing build matrix for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validating build matrix: %w", err)
	}

	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &MatrixError{File: name, Issues: issues}
}

// collectIssues walks the error tree down to the leaf errors.
func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	keyword, msg := "", ""
	if ve.ErrorKind != nil {
		if kw := ve.ErrorKind.KeywordPath(); len(kw) > 0 {
			keyword = kw[len(kw)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	*issues = append(*issues, ValidationIssue{Path: path, Message: msg, Keyword: keyword})
}
