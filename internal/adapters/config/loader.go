// Package config loads declarative experiment definitions from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.faultline.dev/faultline/internal/core/domain"
	"go.faultline.dev/faultline/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ExperimentLoader = (*Loader)(nil)

// Loader implements ports.ExperimentLoader for YAML experiment files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// experimentDTO mirrors the YAML document structure.
type experimentDTO struct {
	Title         string            `yaml:"title"`
	Description   string            `yaml:"description"`
	Configuration map[string]string `yaml:"configuration"`
	Activities    []activityDTO     `yaml:"activities"`
}

type activityDTO struct {
	Name               string      `yaml:"name"`
	Type               string      `yaml:"type"`
	Background         bool        `yaml:"background"`
	ExpectedReturnCode *yaml.Node  `yaml:"expected_return_code"`
	Provider           providerDTO `yaml:"provider"`
}

type providerDTO struct {
	Path      string    `yaml:"path"`
	Timeout   string    `yaml:"timeout"`
	Arguments yaml.Node `yaml:"arguments"`
}

// Load reads an experiment file and maps it onto the domain model.
//
// The checks a weakly typed document can violate happen here, before the
// statically typed model takes over: a present but non-integer
// expected_return_code fails with domain.ErrInvalidActivity. Argument order
// is taken from the document, not from Go map iteration, so repeated runs
// spawn identical command lines.
func (l *Loader) Load(path string) (*domain.Experiment, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read experiment file")
	}

	var dto experimentDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse experiment file")
	}

	exp := &domain.Experiment{
		Title:         dto.Title,
		Description:   dto.Description,
		Configuration: dto.Configuration,
		Digest:        fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}

	for _, a := range dto.Activities {
		activity, err := mapActivity(a)
		if err != nil {
			return nil, err
		}
		exp.Activities = append(exp.Activities, activity)
	}

	l.logger.Info(fmt.Sprintf("loaded experiment '%s' (%d activities, digest %s)",
		exp.Title, len(exp.Activities), exp.Digest))

	return exp, nil
}

func mapActivity(dto activityDTO) (domain.Activity, error) {
	if dto.Name == "" {
		return domain.Activity{}, zerr.Wrap(domain.ErrInvalidActivity, "an activity must have a name")
	}
	if dto.Type != "" && dto.Type != "process" {
		return domain.Activity{}, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedActivityType, fmt.Sprintf(
				"unsupported activity type '%s', in activity '%s'", dto.Type, dto.Name)),
			"type", dto.Type)
	}

	expected, err := decodeExpectedCode(dto.ExpectedReturnCode)
	if err != nil {
		return domain.Activity{}, err
	}

	var timeout time.Duration
	if dto.Provider.Timeout != "" {
		timeout, err = time.ParseDuration(dto.Provider.Timeout)
		if err != nil {
			return domain.Activity{}, zerr.Wrap(err, fmt.Sprintf(
				"invalid timeout '%s', in activity '%s'", dto.Provider.Timeout, dto.Name))
		}
	}

	args, err := decodeArguments(&dto.Provider.Arguments, dto.Name)
	if err != nil {
		return domain.Activity{}, err
	}

	return domain.Activity{
		Name:               dto.Name,
		Background:         dto.Background,
		ExpectedReturnCode: expected,
		Provider: domain.ProcessProvider{
			Path:      dto.Provider.Path,
			Arguments: args,
			Timeout:   timeout,
		},
	}, nil
}

// decodeExpectedCode keeps the weak-typing check of the source document:
// anything present that is not an integer scalar is rejected.
func decodeExpectedCode(node *yaml.Node) (*int, error) {
	if node == nil || node.Tag == "!!null" {
		return nil, nil
	}

	var code int
	if node.Kind != yaml.ScalarNode || node.Tag != "!!int" || node.Decode(&code) != nil {
		return nil, zerr.Wrap(domain.ErrInvalidActivity,
			"return code of a process activity must be an integer")
	}
	return &code, nil
}

// decodeArguments walks the mapping node directly to preserve document order.
func decodeArguments(node *yaml.Node, activity string) (domain.Arguments, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, zerr.Wrap(domain.ErrInvalidActivity, fmt.Sprintf(
			"arguments must be a mapping, in activity '%s'", activity))
	}

	args := make(domain.Arguments, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		val := node.Content[i+1]

		arg := domain.Argument{Flag: key.Value}
		if val.Tag != "!!null" {
			var s string
			if err := val.Decode(&s); err != nil {
				return nil, zerr.Wrap(err, fmt.Sprintf(
					"invalid value for argument '%s', in activity '%s'", key.Value, activity))
			}
			arg.Value = &s
		}
		args = append(args, arg)
	}
	return args, nil
}
