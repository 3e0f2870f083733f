// Package richtemplate builds the Markdown/Mermaid rich payloads
// attached to diagnostics, keyed by error code. Every table and diagram
// is generated live from internal/knowledge rather than duplicated as a
// second hardcoded table, so it cannot drift out of sync with the
// catalogs the semantic analyzer itself validates against.
package richtemplate

import (
	"fmt"
	"sort"
	"strings"

	"ffanalyze/internal/knowledge"
	"ffanalyze/internal/model"
)

func markdown(s string) model.RichBlock {
	return model.RichBlock{Kind: model.RichMarkdownGfm, Markdown: s}
}

func mermaid(s string) model.RichBlock {
	return model.RichBlock{Kind: model.RichMermaid, Mermaid: s}
}

// StreamKindMismatch builds the rich payload for Pass B's E101/E102 (a
// filter whose input lacks the stream kind it needs): an explanation of
// stream kinds plus a small pipeline diagram highlighting the offending
// input.
func StreamKindMismatch(env model.StreamEnvironment, inputIndex int, want model.StreamKind) *model.RichPayload {
	var b strings.Builder
	fmt.Fprintf(&b, "**Stream kinds** describe what an input actually provides: `video`, `audio`, or `subtitle`.\n\n")
	fmt.Fprintf(&b, "Input #%d provides: %s.\n\n", inputIndex, formatKinds(env.KindsOf(inputIndex)))
	fmt.Fprintf(&b, "This option requires a `%s` stream, which that input does not have.\n", want)

	return &model.RichPayload{Blocks: []model.RichBlock{
		markdown(b.String()),
		mermaid(pipelineDiagram(env, inputIndex)),
	}}
}

func formatKinds(kinds map[model.StreamKind]bool) string {
	if len(kinds) == 0 {
		return "no known streams"
	}
	var names []string
	for k := range kinds {
		names = append(names, k.String())
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func pipelineDiagram(env model.StreamEnvironment, highlight int) string {
	var b strings.Builder
	b.WriteString("graph LR\n")
	for i := 0; i < env.NumInputs(); i++ {
		style := ""
		if i == highlight {
			style = ":::highlight"
		}
		fmt.Fprintf(&b, "  in%d[\"input #%d (%s)\"]%s --> out[output]\n", i, i, formatKinds(env.KindsOf(i)), style)
	}
	b.WriteString("  classDef highlight fill:#f66,stroke:#900\n")
	return b.String()
}

// CodecContainerIncompat builds the rich payload for E201: a
// compatibility table for container, generated from the live codec
// catalog rather than a separately maintained table.
func CodecContainerIncompat(db *knowledge.DB, codecName string, container *knowledge.Container) *model.RichPayload {
	var b strings.Builder
	fmt.Fprintf(&b, "Codec `%s` is not in the allowed codec set for container `%s`.\n\n", codecName, container.Name)
	b.WriteString("| Codec | Allowed in `" + container.Name + "` |\n|---|---|\n")

	var names []string
	for name := range container.Codecs {
		names = append(names, name)
	}
	names = append(names, codecName)
	sort.Strings(names)
	seen := make(map[string]bool)
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		allowed := db.IsCodecAllowedInContainer(name, container)
		mark := "no"
		if allowed {
			mark = "yes"
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", name, mark)
	}

	return &model.RichPayload{Blocks: []model.RichBlock{markdown(b.String())}}
}

// UnknownFilter builds the rich payload for E502: a short note listing
// the known filter names passed in (the caller passes every known filter
// of the same kind), if any.
func UnknownFilter(db *knowledge.DB, name string, kind model.StreamKind, known []string) *model.RichPayload {
	var b strings.Builder
	fmt.Fprintf(&b, "Filter `%s` is not in the known %s-filter catalog.\n\n", name, kind)
	if len(known) > 0 {
		sort.Strings(known)
		b.WriteString("Known filters of this kind: `" + strings.Join(known, "`, `") + "`.\n")
	}
	return &model.RichPayload{Blocks: []model.RichBlock{markdown(b.String())}}
}
