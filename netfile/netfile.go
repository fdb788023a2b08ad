// SPDX-License-Identifier: MIT

package netfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbayes/bayesnet"
	"github.com/katalvlaran/lvbayes/core"
)

// ErrInvalidModel indicates a model file that is malformed or incomplete.
var ErrInvalidModel = errors.New("netfile: invalid model")

// Variable types accepted in model files.
const (
	TypeBoolean = "boolean"
	TypeLabel   = "label"
	TypeInt     = "int"
)

// Model is the decoded form of a model file.
type Model struct {
	// Name labels the network.
	Name string `yaml:"name"`

	// Variables lists the nodes; parents may appear after their children.
	Variables []VariableSpec `yaml:"variables"`
}

// VariableSpec declares one node.
type VariableSpec struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Values  []string  `yaml:"values,omitempty"`
	Parents []string  `yaml:"parents,omitempty"`
	CPT     []float64 `yaml:"cpt"`
}

// Load reads and parses the model file at path.
func Load(path string) (*bayesnet.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netfile: failed to read model file: %w", err)
	}

	return Parse(data)
}

// Parse decodes a model and builds its network.
func Parse(data []byte) (*bayesnet.Network, error) {
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}

	return m.Build()
}

// Decode parses YAML with strict field validation and checks the model's
// structure without building the network.
func Decode(data []byte) (*Model, error) {
	var m Model
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrInvalidModel, err)
	}
	if err := validateModel(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// validateModel checks required fields and per-type value lists.
func validateModel(m *Model) error {
	if len(m.Variables) == 0 {
		return fmt.Errorf("%w: no variables", ErrInvalidModel)
	}
	for i, v := range m.Variables {
		if v.Name == "" {
			return fmt.Errorf("%w: variables[%d]: name is required", ErrInvalidModel, i)
		}
		switch v.Type {
		case TypeBoolean:
			if len(v.Values) > 0 {
				return fmt.Errorf("%w: %s: boolean variables take no values", ErrInvalidModel, v.Name)
			}
		case TypeLabel, TypeInt:
			if len(v.Values) == 0 {
				return fmt.Errorf("%w: %s: %s variables need values", ErrInvalidModel, v.Name, v.Type)
			}
		case "":
			return fmt.Errorf("%w: %s: type is required", ErrInvalidModel, v.Name)
		default:
			return fmt.Errorf("%w: %s: unknown type %q", ErrInvalidModel, v.Name, v.Type)
		}
		if len(v.CPT) == 0 {
			return fmt.Errorf("%w: %s: cpt is required", ErrInvalidModel, v.Name)
		}
	}

	return nil
}

// Build turns a decoded model into a network.
func (m *Model) Build() (*bayesnet.Network, error) {
	vars := make(map[string]*core.Variable, len(m.Variables))
	for _, spec := range m.Variables {
		v, err := spec.variable()
		if err != nil {
			return nil, err
		}
		if _, dup := vars[v.Name()]; dup {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidModel, v.Name(), bayesnet.ErrDuplicateNode)
		}
		vars[v.Name()] = v
	}

	b := bayesnet.NewBuilder(bayesnet.WithName(m.Name))
	for _, spec := range m.Variables {
		parents := make([]*core.Variable, len(spec.Parents))
		for i, name := range spec.Parents {
			p, ok := vars[name]
			if !ok {
				return nil, fmt.Errorf("%w: %s: parent %q: %w", ErrInvalidModel, spec.Name, name, bayesnet.ErrUnknownParent)
			}
			parents[i] = p
		}
		if err := b.AddNode(vars[spec.Name], spec.CPT, parents...); err != nil {
			return nil, err
		}
	}
	net, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("netfile: %s: %w", m.Name, err)
	}

	return net, nil
}

// variable creates the declared variable and its domain.
func (s VariableSpec) variable() (*core.Variable, error) {
	var (
		d   *core.FiniteDomain
		err error
	)
	switch s.Type {
	case TypeBoolean:
		d = core.NewBooleanDomain()
	case TypeLabel:
		d, err = core.NewLabelDomain(s.Values...)
	case TypeInt:
		values := make([]core.Value, len(s.Values))
		for i, text := range s.Values {
			n, perr := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: %s: value %q is not an integer", ErrInvalidModel, s.Name, text)
			}
			values[i] = core.Int(n)
		}
		d, err = core.NewFiniteDomain(values...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidModel, s.Name, err)
	}

	return core.NewVariable(s.Name, d)
}

// Lookup returns the network variable called name.
func Lookup(net *bayesnet.Network, name string) (*core.Variable, error) {
	v, ok := net.Variable(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, bayesnet.ErrUnknownVariable)
	}

	return v, nil
}

// ParseEvidence parses "Name=value" against net, e.g. "Rain=true".
func ParseEvidence(net *bayesnet.Network, text string) (core.Assignment, error) {
	name, raw, ok := strings.Cut(text, "=")
	if !ok {
		return core.Assignment{}, fmt.Errorf("netfile: evidence %q: want Name=value", text)
	}
	v, err := Lookup(net, strings.TrimSpace(name))
	if err != nil {
		return core.Assignment{}, fmt.Errorf("netfile: evidence: %w", err)
	}
	fd, _ := v.FiniteDomain()
	value, err := fd.Parse(strings.TrimSpace(raw))
	if err != nil {
		return core.Assignment{}, fmt.Errorf("netfile: evidence %s: %w", v.Name(), err)
	}

	return core.NewAssignment(v, value)
}
