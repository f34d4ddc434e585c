package prompt

import (
	"strings"

	"github.com/Conceptual-Machines/retort-api/pkg/embedded"
)

type Loader struct{}

func NewPromptLoader() *Loader {
	return &Loader{}
}

// GetRebuttalTemplate loads the rebuttal prompt template
func (l *Loader) GetRebuttalTemplate() (string, error) {
	return strings.TrimSpace(string(embedded.RebuttalPromptTmpl)), nil
}
