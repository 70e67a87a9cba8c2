package ftpfetch

import (
	"fmt"
	"io"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftpfetch/types"
	"github.com/c2fo/ftpfetch/utils"
)

// DefaultPort is the control-connection port used when the authority names none.
const DefaultPort = 21

var defaultClientGetter func(utils.Authority, Options) (types.Client, error)

func init() {
	// this func is overridable for tests
	defaultClientGetter = getClient
}

// serverConn adapts *ftp.ServerConn to types.Client.
type serverConn struct {
	conn *_ftp.ServerConn
}

func (c *serverConn) Login(user, password string) error { return c.conn.Login(user, password) }

func (c *serverConn) ChangeDir(path string) error { return c.conn.ChangeDir(path) }

func (c *serverConn) Type(t types.TransferType) error { return c.conn.Type(_ftp.TransferType(t)) }

func (c *serverConn) NameList(path string) ([]string, error) { return c.conn.NameList(path) }

func (c *serverConn) Retr(path string) (io.ReadCloser, error) {
	resp, err := c.conn.Retr(path)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *serverConn) Quit() error { return c.conn.Quit() }

func getClient(authority utils.Authority, opts Options) (types.Client, error) {
	hostPort := authority.HostPortStr()
	if authority.Port() == 0 {
		hostPort = fmt.Sprintf("%s:%d", authority.Host(), DefaultPort)
	}

	dialOptions := []_ftp.DialOption{
		_ftp.DialWithDisabledEPSV(opts.DisableEPSV),
	}
	if opts.DialTimeout > 0 {
		dialOptions = append(dialOptions, _ftp.DialWithTimeout(opts.DialTimeout))
	}
	if opts.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(opts.DebugWriter))
	}

	c, err := _ftp.Dial(hostPort, dialOptions...)
	if err != nil {
		return nil, err
	}

	return &serverConn{conn: c}, nil
}
