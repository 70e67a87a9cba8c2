package ftpfetch

import (
	"errors"
	"fmt"
	"net/textproto"
	"strings"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpfetch/options"
	"github.com/c2fo/ftpfetch/types"
	"github.com/c2fo/ftpfetch/utils"
)

// Session represents a single FTP control connection. A Session is not safe
// for concurrent use; callers must serialize access to it.
type Session struct {
	options   Options
	authority utils.Authority
	client    types.Client
}

// NewSession initializer for Session struct.
func NewSession(opts ...options.NewSessionOption[Session]) *Session {
	s := &Session{
		options: Options{},
	}

	// apply options
	options.ApplyOptions(s, opts...)

	return s
}

// Dial parses authorityStr ([user[:password]@]host[:port], port defaulting to
// DefaultPort) and opens the control connection. It does not authenticate.
// A single attempt is made; there are no retries.
func Dial(authorityStr string, opts ...options.NewSessionOption[Session]) (*Session, error) {
	s := NewSession(opts...)

	auth, err := utils.NewAuthority(authorityStr)
	if err != nil {
		return nil, err
	}
	s.authority = auth

	// a client supplied via WithClient wins over dialing
	if s.client != nil {
		return s, nil
	}

	client, err := defaultClientGetter(auth, s.options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailure, err)
	}
	s.client = client

	return s, nil
}

// Open is Dial followed by Login with credentials resolved from the authority
// userinfo, environment variables, and Options. See Authentication in the
// package documentation for resolution order.
func Open(authorityStr string, opts ...options.NewSessionOption[Session]) (*Session, error) {
	s, err := Dial(authorityStr, opts...)
	if err != nil {
		return nil, err
	}

	if err := s.Login(fetchUsername(s.authority, s.options), fetchPassword(s.authority, s.options)); err != nil {
		return nil, err
	}

	return s, nil
}

// Login submits credentials on the open session. A server rejection of the
// credentials (530) is returned as ErrAuthFailure; any other failure is
// returned as-is.
func (s *Session) Login(username, password string) error {
	if s == nil || s.client == nil {
		return ErrSessionRequired
	}

	if err := s.client.Login(username, password); err != nil {
		if isAuthRejection(err) {
			return fmt.Errorf("%w: %w", ErrAuthFailure, err)
		}
		return err
	}

	return nil
}

// isAuthRejection reports whether err is the server's not-logged-in response.
func isAuthRejection(err error) bool {
	var tpErr *textproto.Error
	if errors.As(err, &tpErr) {
		return tpErr.Code == _ftp.StatusNotLoggedIn
	}
	return strings.HasPrefix(err.Error(), fmt.Sprintf("%d", _ftp.StatusNotLoggedIn))
}

// List requests a name listing (NLST) of path, or of the current directory
// when path is empty. Empty entries are dropped; server order is preserved,
// which is not guaranteed to be sorted.
func (s *Session) List(path string) ([]string, error) {
	if s == nil || s.client == nil {
		return nil, ErrSessionRequired
	}

	if path == "" {
		path = "."
	} else if path != "/" {
		path = utils.RemoveTrailingSlash(path)
	}

	entries, err := s.client.NameList(path)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	names := make([]string, 0, len(entries))
	for _, name := range entries {
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// Close sends QUIT and releases the session. Calling Close on a nil or
// already-closed session is a no-op.
func (s *Session) Close() error {
	if s == nil || s.client == nil {
		return nil
	}

	err := s.client.Quit()
	s.client = nil
	return err
}
