package shader

type GenerateInput struct {
	Prompt string
}

// GenerateOutput carries the merged shader program: the model's answer with
// every missing field filled from the default tree.
type GenerateOutput struct {
	Program map[string]interface{}
}
