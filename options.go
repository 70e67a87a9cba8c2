package ftpfetch

import (
	"io"
	"os"
	"time"

	"github.com/c2fo/ftpfetch/types"
	"github.com/c2fo/ftpfetch/utils"
)

const (
	envUsername = "FTPFETCH_USERNAME"
	envPassword = "FTPFETCH_PASSWORD"

	defaultUsername = "anonymous"
	defaultPassword = "anonymous"
)

// Options holds client options for a Session.
type Options struct {
	UserName     string // env var FTPFETCH_USERNAME
	Password     string // env var FTPFETCH_PASSWORD
	DisableEPSV  bool
	DialTimeout  time.Duration
	DebugWriter  io.Writer
	TransferType types.TransferType // TransferTypeBinary unless set
}

// fetchUsername resolves the username used by Open.
// Precedence: Options.UserName, env var, authority userinfo, "anonymous".
func fetchUsername(auth utils.Authority, opts Options) string {
	username := defaultUsername
	if auth.UserInfo().Username() != "" {
		username = auth.UserInfo().Username()
	}
	if v := os.Getenv(envUsername); v != "" {
		username = v
	}
	if opts.UserName != "" {
		username = opts.UserName
	}
	return username
}

// fetchPassword resolves the password used by Open.
// Precedence: Options.Password, env var, authority userinfo(deprecated), "anonymous".
func fetchPassword(auth utils.Authority, opts Options) string {
	password := defaultPassword
	if auth.UserInfo().Password() != "" {
		password = auth.UserInfo().Password()
	}
	if v := os.Getenv(envPassword); v != "" {
		password = v
	}
	if opts.Password != "" {
		password = opts.Password
	}
	return password
}
