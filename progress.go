package mdreport

// Progress observes a build. Calls arrive in report order from the
// goroutine running Builder.Run.
type Progress interface {
	ReportStarted(r Report)
	HTMLWritten(r Report, path string)
	ArtifactRendered(r Report, a Artifact)
	ArtifactFailed(r Report, err error)
	IndexWritten(path string)
}

type nopProgress struct{}

func (nopProgress) ReportStarted(Report)              {}
func (nopProgress) HTMLWritten(Report, string)        {}
func (nopProgress) ArtifactRendered(Report, Artifact) {}
func (nopProgress) ArtifactFailed(Report, error)      {}
func (nopProgress) IndexWritten(string)               {}

var _ Progress = nopProgress{}
