package inits

import (
	"fmt"

	"kidney-care-ai/app/server/classifier"
)

// Classifier loads the detection model once at startup. The model is
// read-only afterwards and shared across requests.
func Classifier(path string) (*classifier.Model, error) {
	model, err := classifier.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}

	return model, nil
}
