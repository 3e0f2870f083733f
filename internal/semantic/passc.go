package semantic

import (
	"fmt"
	"strings"

	"ffanalyze/internal/model"
	"ffanalyze/internal/richtemplate"
)

// passC checks that every selected codec is allowed in its output's
// container.
func (a *analysis) passC() {
	for _, out := range a.cmd.Outputs {
		container, ok := a.containerFor(out)
		if !ok {
			continue
		}
		for _, o := range out.Options {
			if o.Kind != model.OptVideoCodec && o.Kind != model.OptAudioCodec && o.Kind != model.OptCodec {
				continue
			}
			if !o.HasValue || strings.EqualFold(o.Value, "copy") {
				continue
			}
			if _, known := a.db.GetCodec(o.Value); !known {
				continue // Pass A flags unknown -c:v/-c:a codecs as W201; an unknown bare -c codec gets no diagnostic
			}
			if a.db.IsCodecAllowedInContainer(o.Value, container) {
				continue
			}
			msg := fmt.Sprintf("codec %q is not allowed in container %q", o.Value, container.Name)
			a.b.New("E201", model.SeverityError, msg).
				Target(o.ValueSpan, msg).
				Reference(out.PathSpan, "output container").
				Rich(richtemplate.CodecContainerIncompat(a.db, o.Value, container).Blocks...).
				Finish()
		}
	}
}
