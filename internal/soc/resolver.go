package soc

// ResolveSubGroup maps a full SOC occupation code ("NN-NNNN") to the key of
// the best-matching sub-group template. The cascade tries, in order: the
// exact 5-character prefix, the prefix with its last digit rounded down to
// zero, the major group's "-10" catch-all, then its "-90" residual group.
// Returns "" when no template covers the code's major group.
func ResolveSubGroup(code string) string {
	if len(code) < 5 {
		return ""
	}

	prefix := code[:5]
	if _, ok := templateIndex[prefix]; ok {
		return prefix
	}

	rounded := prefix[:4] + "0"
	if _, ok := templateIndex[rounded]; ok {
		return rounded
	}

	major := code[:2]
	if _, ok := templateIndex[major+"-10"]; ok {
		return major + "-10"
	}
	if _, ok := templateIndex[major+"-90"]; ok {
		return major + "-90"
	}

	return ""
}
