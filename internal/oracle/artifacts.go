package oracle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Artifacts are the model metadata files loaded once at startup:
// feature_info.json declares the ordered feature schema, and
// disease_mapping.json maps disease names to the numeric class labels
// the model emits. Read-only after load, safe for concurrent use.
type Artifacts struct {
	// Features is the ordered list of feature names the model expects.
	Features []string

	diseaseByLabel map[string]string
}

type featureInfo struct {
	AllFeatures []string `json:"all_features"`
}

// LoadArtifacts reads feature_info.json and disease_mapping.json from
// dir. A missing or unreadable feature schema is fatal for prediction
// and reported as ErrModelUnavailable. The disease mapping is optional:
// without it, raw model labels pass through unchanged.
func LoadArtifacts(dir string) (*Artifacts, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "feature_info.json"))
	if err != nil {
		return nil, fmt.Errorf("reading feature schema: %w: %v", ErrModelUnavailable, err)
	}
	var info featureInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parsing feature schema: %w: %v", ErrModelUnavailable, err)
	}
	if len(info.AllFeatures) == 0 {
		return nil, fmt.Errorf("feature schema declares no features: %w", ErrModelUnavailable)
	}

	a := &Artifacts{Features: info.AllFeatures}

	raw, err = os.ReadFile(filepath.Join(dir, "disease_mapping.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return a, nil
		}
		return nil, fmt.Errorf("reading disease mapping: %w: %v", ErrModelUnavailable, err)
	}
	var diseaseToLabel map[string]int
	if err := json.Unmarshal(raw, &diseaseToLabel); err != nil {
		return nil, fmt.Errorf("parsing disease mapping: %w: %v", ErrModelUnavailable, err)
	}
	a.diseaseByLabel = make(map[string]string, len(diseaseToLabel))
	for disease, label := range diseaseToLabel {
		a.diseaseByLabel[strconv.Itoa(label)] = disease
	}
	return a, nil
}

// DiseaseName resolves a raw model label to its disease name. Labels
// with no mapping entry pass through unchanged.
func (a *Artifacts) DiseaseName(label string) string {
	if name, ok := a.diseaseByLabel[label]; ok {
		return name
	}
	return label
}
