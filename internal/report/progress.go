package report

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress is a records-counted bar. The zero value is a no-op.
type Progress struct {
	pbs *mpb.Progress
	bar *mpb.Bar
}

// StartProgress draws a bar on w when enabled and there is work to show.
func StartProgress(w io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := pbs.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("counted records: ", decor.WC{W: len("counted records: "), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.AverageETA(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Progress{pbs: pbs, bar: bar}
}

// Increment advances the bar by one record. Safe for concurrent use.
func (p *Progress) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Finish waits for the bar to render its last frame. A failed run aborts the bar
// so Wait does not block on an incomplete total.
func (p *Progress) Finish(ok bool) {
	if p.pbs == nil {
		return
	}
	if !ok {
		p.bar.Abort(false)
	}
	p.pbs.Wait()
}
