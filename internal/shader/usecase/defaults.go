package usecase

// defaultTree returns the fallback values merged under every answer so callers
// always receive a structurally complete program. Built fresh per call so a
// merge can never leak state between requests.
func defaultTree() map[string]interface{} {
	return map[string]interface{}{
		"uniforms": map[string]interface{}{
			"u_resolution": []interface{}{500.0, 500.0},
			"u_time":       0.0,
			"u_color":      []interface{}{1.0, 0.0, 0.0, 1.0},
		},
		"camera": map[string]interface{}{
			"position": []interface{}{0.0, 0.0, 5.0},
			"target":   []interface{}{0.0, 0.0, 0.0},
		},
		"scene": map[string]interface{}{
			"background_color": []interface{}{0.0, 0.0, 0.0, 1.0},
		},
		"mesh": map[string]interface{}{
			"scale": []interface{}{1.0, 1.0, 1.0},
		},
		"vertex_data": map[string]interface{}{
			"dimensionality": 3.0,
		},
	}
}
