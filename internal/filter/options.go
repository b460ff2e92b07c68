package filter

// Options returns the distinct non-empty values of dimension d across
// records, in first-seen order.
func Options[T Record](records []T, d Dimension) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, r := range records {
		values, ok := r.Values(d)
		if !ok {
			return out
		}
		for _, v := range values {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
