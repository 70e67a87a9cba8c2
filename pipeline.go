package ftpfetch

import (
	"github.com/c2fo/ftpfetch/options"
)

// Pipeline chains session stages with a sticky error: once any stage fails,
// every later stage is a no-op that performs no network call, and Err returns
// the first failure unchanged.
type Pipeline struct {
	session *Session
	err     error
}

// Start opens a pipeline by dialing authorityStr. A dial failure is held as
// the pipeline error rather than returned.
func Start(authorityStr string, opts ...options.NewSessionOption[Session]) *Pipeline {
	s, err := Dial(authorityStr, opts...)
	return &Pipeline{session: s, err: err}
}

// Login submits credentials unless the pipeline already failed.
func (p *Pipeline) Login(username, password string) *Pipeline {
	if p.err != nil {
		return p
	}
	p.err = p.session.Login(username, password)
	return p
}

// List returns the name listing of path, or nil if the pipeline has failed.
func (p *Pipeline) List(path string) []string {
	if p.err != nil {
		return nil
	}
	names, err := p.session.List(path)
	p.err = err
	return names
}

// Fetch downloads remotePath to localDir and returns the local path written,
// or "" if the pipeline has failed.
func (p *Pipeline) Fetch(remotePath, localDir string) string {
	if p.err != nil {
		return ""
	}
	localPath, err := p.session.Fetch(remotePath, localDir)
	p.err = err
	return localPath
}

// FetchAll downloads remotePaths to localDir and returns the local paths
// written before any failure.
func (p *Pipeline) FetchAll(remotePaths []string, localDir string) []string {
	if p.err != nil {
		return nil
	}
	localPaths, err := p.session.FetchAll(remotePaths, localDir)
	p.err = err
	return localPaths
}

// Err returns the first error any stage produced, or nil.
func (p *Pipeline) Err() error {
	return p.err
}

// Close quits the underlying session. The pipeline error, if any, is retained
// and still available via Err.
func (p *Pipeline) Close() error {
	if p.session == nil {
		return nil
	}
	return p.session.Close()
}

// Session exposes the underlying session for direct use.
func (p *Pipeline) Session() *Session {
	return p.session
}
