package agent

import "strings"

// OutlineNode is one element parsed from a snapshot outline line of the
// form `- role "label" [ref=e5] [testid=swap-btn]`.
type OutlineNode struct {
	Ref    string
	Role   string
	Name   string
	TestID string
}

// ParseOutline extracts the addressable elements from a snapshot
// outline. Lines without a ref are skipped; they carry context for the
// planner but cannot be acted on.
func ParseOutline(outline string) []OutlineNode {
	var nodes []OutlineNode
	for _, line := range strings.Split(outline, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		ref := bracketField(line, "[ref=")
		if ref == "" {
			continue
		}
		node := OutlineNode{
			Ref:    ref,
			TestID: bracketField(line, "[testid="),
		}
		if i := strings.IndexByte(line, ' '); i > 0 {
			node.Role = line[:i]
			rest := line[i+1:]
			if strings.HasPrefix(rest, `"`) {
				if j := strings.Index(rest[1:], `"`); j >= 0 {
					node.Name = rest[1 : 1+j]
				}
			}
		}
		nodes = append(nodes, node)
	}
	return nodes
}

// bracketField returns the value of a `[key=value]` annotation, or "".
func bracketField(line, prefix string) string {
	i := strings.Index(line, prefix)
	if i < 0 {
		return ""
	}
	rest := line[i+len(prefix):]
	j := strings.IndexByte(rest, ']')
	if j < 0 {
		return ""
	}
	return rest[:j]
}
