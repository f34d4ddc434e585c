package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Conceptual-Machines/retort-api/internal/models"
)

// maxRebuttalChars caps the length the model is asked to keep each line under
const maxRebuttalChars = 50

// Builder builds prompts for the rebuttal generator
type Builder struct {
	loader  *Loader
	tmpl    *template.Template
	loadErr error
}

// NewPromptBuilder creates a new prompt builder with the embedded template parsed up front
func NewPromptBuilder() *Builder {
	b := &Builder{
		loader: NewPromptLoader(),
	}
	b.tmpl, b.loadErr = b.parseTemplate()
	return b
}

type rebuttalPromptData struct {
	Input     string
	Intensity int
	Label     string
	Count     int
	MaxChars  int
}

// BuildRebuttalPrompt renders the prompt for a phrase and intensity level.
// The input is quoted verbatim.
func (b *Builder) BuildRebuttalPrompt(input string, intensity int) (string, error) {
	if b.loadErr != nil {
		return "", b.loadErr
	}

	var sb strings.Builder
	err := b.tmpl.Execute(&sb, rebuttalPromptData{
		Input:     input,
		Intensity: intensity,
		Label:     models.IntensityLabel(intensity),
		Count:     models.MaxResponses,
		MaxChars:  maxRebuttalChars,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render rebuttal prompt: %w", err)
	}

	return sb.String(), nil
}

func (b *Builder) parseTemplate() (*template.Template, error) {
	content, err := b.loader.GetRebuttalTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load rebuttal prompt: %w", err)
	}

	tmpl, err := template.New("rebuttal").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rebuttal prompt: %w", err)
	}

	return tmpl, nil
}
