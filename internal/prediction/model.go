package prediction

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported multi-class strategies of an exported logistic regression.
const (
	Multinomial = "multinomial"
	OneVsRest   = "ovr"
)

// Artifact is the serialized form of a trained logistic regression:
// one coefficient row and one intercept per class. JSON is a subset of YAML,
// so either encoding can be loaded.
type Artifact struct {
	Classes    []string    `yaml:"classes"`
	MultiClass string      `yaml:"multi_class"`
	Coef       [][]float64 `yaml:"coef"`
	Intercept  []float64   `yaml:"intercept"`
}

// LogisticModel is a trained logistic regression outcome classifier.
type LogisticModel struct {
	classes    []string
	multiClass string
	coef       [][]float64
	intercept  []float64
}

// LoadModel reads and validates a classifier artifact from disk.
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", path, err)
	}
	m, err := NewLogisticModel(a)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

// NewLogisticModel validates an artifact against the class-index contract.
func NewLogisticModel(a Artifact) (*LogisticModel, error) {
	if len(a.Classes) != NumClasses {
		return nil, fmt.Errorf("expected %d classes, got %d", NumClasses, len(a.Classes))
	}
	for i, c := range a.Classes {
		if !strings.EqualFold(c, ClassLabels[i]) {
			return nil, fmt.Errorf("class %d is %q, want %q", i, c, ClassLabels[i])
		}
	}

	multiClass := strings.ToLower(a.MultiClass)
	switch multiClass {
	case "", "auto":
		multiClass = Multinomial
	case Multinomial, OneVsRest:
	default:
		return nil, fmt.Errorf("unsupported multi_class %q", a.MultiClass)
	}

	if len(a.Coef) != NumClasses {
		return nil, fmt.Errorf("expected %d coefficient rows, got %d", NumClasses, len(a.Coef))
	}
	for i, row := range a.Coef {
		if len(row) != 1 {
			return nil, fmt.Errorf("coefficient row %d has %d features, want 1", i, len(row))
		}
		if !isFinite(row[0]) {
			return nil, fmt.Errorf("coefficient row %d is not finite: %v", i, row[0])
		}
	}
	if len(a.Intercept) != NumClasses {
		return nil, fmt.Errorf("expected %d intercepts, got %d", NumClasses, len(a.Intercept))
	}
	for i, v := range a.Intercept {
		if !isFinite(v) {
			return nil, fmt.Errorf("intercept %d is not finite: %v", i, v)
		}
	}

	return &LogisticModel{
		classes:    append([]string(nil), a.Classes...),
		multiClass: multiClass,
		coef:       a.Coef,
		intercept:  a.Intercept,
	}, nil
}

// Classes returns the class labels in contract order.
func (m *LogisticModel) Classes() []string {
	return append([]string(nil), m.classes...)
}

// PredictProba returns one probability row per feature row.
func (m *LogisticModel) PredictProba(features [][]float64) ([][]float64, error) {
	out := make([][]float64, len(features))
	for i, x := range features {
		if len(x) != 1 {
			return nil, fmt.Errorf("feature row %d has %d values, want 1", i, len(x))
		}
		z := make([]float64, NumClasses)
		for k := range z {
			z[k] = m.intercept[k] + m.coef[k][0]*x[0]
		}
		if m.multiClass == OneVsRest {
			out[i] = normalizedSigmoid(z)
		} else {
			out[i] = softmax(z)
		}
	}
	return out, nil
}

func softmax(z []float64) []float64 {
	maxZ := math.Inf(-1)
	for _, v := range z {
		maxZ = math.Max(maxZ, v)
	}
	var sum float64
	p := make([]float64, len(z))
	for k, v := range z {
		p[k] = math.Exp(v - maxZ)
		sum += p[k]
	}
	for k := range p {
		p[k] /= sum
	}
	return p
}

func normalizedSigmoid(z []float64) []float64 {
	var sum float64
	p := make([]float64, len(z))
	for k, v := range z {
		p[k] = 1 / (1 + math.Exp(-v))
		sum += p[k]
	}
	for k := range p {
		p[k] /= sum
	}
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
