package shader

// SystemInstruction is the fixed instruction sent with every generation
// request. It never changes during the process lifetime.
const SystemInstruction = `You are a WebGL shader generator. Given a description of a scene or ` +
	`object, respond with a single JSON object containing a complete, valid GLSL ES 1.0 shader ` +
	`program. The object must have the keys "vertex_shader" and "fragment_shader" (GLSL source ` +
	`strings), "vertex_data" (with "positions" and optionally "indices" and "dimensionality"), ` +
	`"uniforms" (with "u_resolution" and optionally "u_time" and "u_color"), and "attributes" ` +
	`(with "a_position"). Optionally include "camera", "scene" and "mesh" objects. Respond with ` +
	`JSON only, no prose and no markdown fences.`

// ResponseSchema returns the generation schema passed to the Gemini API to
// constrain its output shape. Callers must treat the result as read-only.
func ResponseSchema() map[string]interface{} {
	arrayOfNumbers := func() map[string]interface{} {
		return map[string]interface{}{
			"type":  "ARRAY",
			"items": map[string]interface{}{"type": "NUMBER"},
		}
	}

	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"vertex_shader":   map[string]interface{}{"type": "STRING"},
			"fragment_shader": map[string]interface{}{"type": "STRING"},
			"vertex_data": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"positions":      arrayOfNumbers(),
					"indices":        arrayOfNumbers(),
					"dimensionality": map[string]interface{}{"type": "NUMBER"},
				},
				"required": []string{"positions"},
			},
			"uniforms": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"u_resolution": arrayOfNumbers(),
					"u_time":       map[string]interface{}{"type": "NUMBER"},
					"u_color":      arrayOfNumbers(),
				},
				"required": []string{"u_resolution"},
			},
			"attributes": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"a_position": arrayOfNumbers(),
				},
				"required": []string{"a_position"},
			},
			"camera": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"position": arrayOfNumbers(),
					"target":   arrayOfNumbers(),
				},
			},
			"scene": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"background_color": arrayOfNumbers(),
				},
			},
			"mesh": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"scale": arrayOfNumbers(),
				},
			},
		},
		"required": []string{"vertex_shader", "fragment_shader", "vertex_data", "uniforms", "attributes"},
	}
}
