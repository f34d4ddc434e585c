package embedded

import (
	_ "embed"
)

// Embed prompt templates
//
//go:embed data/prompts/rebuttal_prompt.tmpl
var RebuttalPromptTmpl []byte
