package utils

import (
	"strings"
)

// SplitIDs flattens args that may each hold comma separated ids, dropping
// blanks: ["A,B", " C "] -> [A B C].
func SplitIDs(args []string) []string {
	var ids []string
	for _, arg := range args {
		for _, id := range strings.Split(arg, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
