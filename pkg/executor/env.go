package executor

import (
	"sort"
	"strings"
)

// mergeEnv returns base with overrides applied. Variables already present
// in base keep their position; new ones are appended in name order so the
// child environment is deterministic.
func mergeEnv(base []string, overrides map[string]string) []string {
	out := make([]string, 0, len(base)+len(overrides))
	seen := make(map[string]bool, len(overrides))

	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if val, ok := overrides[name]; ok {
			if !seen[name] {
				out = append(out, name+"="+val)
				seen[name] = true
			}
			continue
		}
		out = append(out, kv)
	}

	var added []string
	for name := range overrides {
		if !seen[name] {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	for _, name := range added {
		out = append(out, name+"="+overrides[name])
	}
	return out
}
